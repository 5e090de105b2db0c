package bankacct

import "time"

//go:generate mockgen -destination=mocks/mock_date.go -package=mocks . DateSource

// DateSource supplies the date stamped on each recorded operation. The returned
// string is stored verbatim.
type DateSource interface {
	TodaysDate() string
}

const DefaultDateLayout = "02-01-2006"

// ClockDate is a DateSource backed by the wall clock.
type ClockDate struct {
	Layout string
	Now    func() time.Time
}

func (c ClockDate) TodaysDate() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	layout := c.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	return now().Format(layout)
}
