package bankacct

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type OperationKind int

const (
	Deposit OperationKind = iota + 1
	Withdrawal
)

func (k OperationKind) String() string {
	switch k {
	case Deposit:
		return "DEPOSIT"
	case Withdrawal:
		return "WITHDRAWAL"
	default:
		return "UNKNOWN"
	}
}

// Operation is a single recorded deposit or withdrawal. Balance is the account
// balance immediately after the operation was applied, not the current one.
type Operation struct {
	ID      snowflake.ID
	Kind    OperationKind
	Amount  decimal.Decimal
	Date    string
	Balance decimal.Decimal
}

// Signed returns the amount as it affects the balance.
func (o Operation) Signed() decimal.Decimal {
	if o.Kind == Withdrawal {
		return o.Amount.Neg()
	}
	return o.Amount
}
