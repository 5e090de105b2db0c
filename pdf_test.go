package bankacct_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/bankacct"
)

func TestPDFStatement(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	stmt := bankacct.NewPDFStatement("Account statement")
	acct := bankacct.NewAccount(fixedDate("26-07-2017"), bankacct.NewHistoryRenderer(stmt))
	reqrd.NoError(acct.Deposit(dec("100")))
	reqrd.NoError(acct.Withdraw(dec("40")))

	acct.PrintHistory()
	as.Equal(3, stmt.Lines())

	buf := new(bytes.Buffer)
	reqrd.NoError(stmt.Output(buf))
	as.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
