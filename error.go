package bankacct

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ErrInvalidAmount struct {
	Amount decimal.Decimal `json:"amount"`
}

func (e ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount: %s", e.Amount)
}

type ErrInsufficientFunds struct {
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: cannot withdraw %s from balance %s", e.Amount, e.Balance)
}

type ErrInvalidConfig struct {
	Fields map[string]string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("missing/invalid config: %v", e.Fields)
}
