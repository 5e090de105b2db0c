package bankacct

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// OperationLog is the append-only, oldest-first record of an account's operations.
// It performs no validation; callers are expected to reject negative amounts.
type OperationLog struct {
	ops     []Operation
	balance decimal.Decimal
	node    *snowflake.Node
}

type LogOption func(*OperationLog)

// WithIDNode makes the log stamp every appended operation with an ID from node.
func WithIDNode(node *snowflake.Node) LogOption {
	return func(l *OperationLog) {
		l.node = node
	}
}

func NewOperationLog(opts ...LogOption) *OperationLog {
	l := &OperationLog{
		balance: decimal.Zero,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *OperationLog) Append(kind OperationKind, amount decimal.Decimal, date string) Operation {
	op := Operation{
		Kind:   kind,
		Amount: amount,
		Date:   date,
	}
	if l.node != nil {
		op.ID = l.node.Generate()
	}
	op.Balance = l.balance.Add(op.Signed())
	l.ops = append(l.ops, op)
	l.balance = op.Balance
	return op
}

func (l *OperationLog) Balance() decimal.Decimal {
	return l.balance
}

// Operations returns a copy of the recorded operations, oldest first.
func (l *OperationLog) Operations() []Operation {
	out := make([]Operation, len(l.ops))
	copy(out, l.ops)
	return out
}

func (l *OperationLog) Len() int {
	return len(l.ops)
}
