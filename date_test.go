package bankacct_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arhyth/bankacct"
)

func TestClockDate(t *testing.T) {
	now := func() time.Time {
		return time.Date(2017, time.July, 26, 15, 4, 5, 0, time.UTC)
	}

	t.Run("defaults to day-month-year", func(tt *testing.T) {
		assert.Equal(tt, "26-07-2017", bankacct.ClockDate{Now: now}.TodaysDate())
	})

	t.Run("honours a custom layout", func(tt *testing.T) {
		d := bankacct.ClockDate{Layout: time.DateOnly, Now: now}
		assert.Equal(tt, "2017-07-26", d.TodaysDate())
	})
}
