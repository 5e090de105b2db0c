package bankacct

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Ledger) Ledger

// Chain wraps l so that the first middleware is the outermost.
func Chain(l Ledger, mws ...Middleware) Ledger {
	for i := len(mws) - 1; i >= 0; i-- {
		l = mws[i](l)
	}
	return l
}

type loggingMiddleware struct {
	next Ledger
	log  *zerolog.Logger
}

var (
	_ Ledger = (*loggingMiddleware)(nil)
)

func NewLoggingMiddleware(log *zerolog.Logger) Middleware {
	return func(next Ledger) Ledger {
		return &loggingMiddleware{
			next: next,
			log:  log,
		}
	}
}

func (m *loggingMiddleware) Deposit(amount decimal.Decimal) error {
	err := m.next.Deposit(amount)
	m.event(err).
		Str("method", "deposit").
		Stringer("amount", amount).
		Msg("deposit")
	return err
}

func (m *loggingMiddleware) Withdraw(amount decimal.Decimal) error {
	err := m.next.Withdraw(amount)
	m.event(err).
		Str("method", "withdraw").
		Stringer("amount", amount).
		Msg("withdraw")
	return err
}

func (m *loggingMiddleware) Balance() decimal.Decimal {
	bal := m.next.Balance()
	m.log.Debug().
		Str("method", "balance").
		Stringer("balance", bal).
		Msg("balance")
	return bal
}

func (m *loggingMiddleware) PrintHistory() {
	m.next.PrintHistory()
	m.log.Debug().
		Str("method", "print_history").
		Msg("history printed")
}

func (m *loggingMiddleware) event(err error) *zerolog.Event {
	if err != nil {
		return m.log.Warn().Err(err)
	}
	return m.log.Info()
}

// serialMiddleware lets a single Ledger be shared between goroutines by holding a
// weight-1 semaphore for the duration of every call. The wrapped Ledger itself
// stays single-threaded.
type serialMiddleware struct {
	next Ledger
	sem  *semaphore.Weighted
}

var (
	_ Ledger = (*serialMiddleware)(nil)
)

func NewSerialMiddleware() Middleware {
	return func(next Ledger) Ledger {
		return &serialMiddleware{
			next: next,
			sem:  semaphore.NewWeighted(1),
		}
	}
}

func (s *serialMiddleware) lock() func() {
	// Acquire only fails on a done context.
	_ = s.sem.Acquire(context.Background(), 1)
	return func() { s.sem.Release(1) }
}

func (s *serialMiddleware) Deposit(amount decimal.Decimal) error {
	defer s.lock()()
	return s.next.Deposit(amount)
}

func (s *serialMiddleware) Withdraw(amount decimal.Decimal) error {
	defer s.lock()()
	return s.next.Withdraw(amount)
}

func (s *serialMiddleware) Balance() decimal.Decimal {
	defer s.lock()()
	return s.next.Balance()
}

func (s *serialMiddleware) PrintHistory() {
	defer s.lock()()
	s.next.PrintHistory()
}
