package bankacct

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_ledger.go -package=mocks . Ledger

type Ledger interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Balance() decimal.Decimal
	PrintHistory()
}

var (
	_ Ledger = (*Account)(nil)
)

// Account validates deposits and withdrawals before recording them in its own
// OperationLog. A rejected operation leaves the log untouched.
//
// Account is not safe for concurrent use; see NewSerialMiddleware.
type Account struct {
	dates    DateSource
	renderer *HistoryRenderer
	log      *OperationLog
	logger   *zerolog.Logger
}

type AccountOption func(*Account)

func WithLogger(logger *zerolog.Logger) AccountOption {
	return func(a *Account) {
		a.logger = logger
	}
}

// WithOperationLog replaces the account's empty log. The log must not be shared
// with another account.
func WithOperationLog(log *OperationLog) AccountOption {
	return func(a *Account) {
		a.log = log
	}
}

func NewAccount(dates DateSource, renderer *HistoryRenderer, opts ...AccountOption) *Account {
	nop := zerolog.Nop()
	a := &Account{
		dates:    dates,
		renderer: renderer,
		log:      NewOperationLog(),
		logger:   &nop,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		a.logger.Debug().
			Str("op", "deposit").
			Stringer("amount", amount).
			Msg("rejected negative amount")
		return ErrInvalidAmount{Amount: amount}
	}
	a.log.Append(Deposit, amount, a.dates.TodaysDate())
	return nil
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		a.logger.Debug().
			Str("op", "withdraw").
			Stringer("amount", amount).
			Msg("rejected negative amount")
		return ErrInvalidAmount{Amount: amount}
	}
	bal := a.log.Balance()
	if amount.GreaterThan(bal) {
		a.logger.Debug().
			Str("op", "withdraw").
			Stringer("amount", amount).
			Stringer("balance", bal).
			Msg("rejected withdrawal over balance")
		return ErrInsufficientFunds{Amount: amount, Balance: bal}
	}
	a.log.Append(Withdrawal, amount, a.dates.TodaysDate())
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.log.Balance()
}

func (a *Account) PrintHistory() {
	a.renderer.Render(a.log)
}

// Amounts returns the amount of every operation, oldest first.
func (a *Account) Amounts() []decimal.Decimal {
	ops := a.log.Operations()
	out := make([]decimal.Decimal, len(ops))
	for i, op := range ops {
		out[i] = op.Amount
	}
	return out
}

func (a *Account) Kinds() []OperationKind {
	ops := a.log.Operations()
	out := make([]OperationKind, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}
	return out
}

func (a *Account) Dates() []string {
	ops := a.log.Operations()
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Date
	}
	return out
}
