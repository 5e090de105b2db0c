package bankacct

import (
	"fmt"
	"io"
	"strings"
)

//go:generate mockgen -destination=mocks/mock_sink.go -package=mocks . LineSink

// LineSink receives rendered history lines in order.
type LineSink interface {
	WriteLine(text string)
}

const (
	HistoryHeader = "DATE | OPERATION | AMOUNT | BALANCE"

	DefaultCurrencySymbol       = "€"
	DefaultPrecision      int32 = 1
)

// Format controls how amounts and balances are printed.
type Format struct {
	Currency  string
	Precision int32
}

func DefaultFormat() Format {
	return Format{
		Currency:  DefaultCurrencySymbol,
		Precision: DefaultPrecision,
	}
}

type RenderOption func(*HistoryRenderer)

func WithFormat(f Format) RenderOption {
	return func(r *HistoryRenderer) {
		r.format = f
	}
}

func WithCurrencySymbol(sym string) RenderOption {
	return func(r *HistoryRenderer) {
		r.format.Currency = sym
	}
}

func WithPrecision(places int32) RenderOption {
	return func(r *HistoryRenderer) {
		r.format.Precision = places
	}
}

type HistoryRenderer struct {
	sink   LineSink
	format Format
}

func NewHistoryRenderer(sink LineSink, opts ...RenderOption) *HistoryRenderer {
	r := &HistoryRenderer{
		sink:   sink,
		format: DefaultFormat(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the header followed by one line per operation, newest first.
func (r *HistoryRenderer) Render(log *OperationLog) {
	r.sink.WriteLine(HistoryHeader)
	ops := log.Operations()
	for i := len(ops) - 1; i >= 0; i-- {
		r.sink.WriteLine(r.line(ops[i]))
	}
}

func (r *HistoryRenderer) line(op Operation) string {
	return strings.Join([]string{
		op.Date,
		op.Kind.String(),
		op.Amount.StringFixed(r.format.Precision) + r.format.Currency,
		op.Balance.StringFixed(r.format.Precision) + r.format.Currency,
	}, " | ")
}

// WriterSink writes each line to W followed by a newline. The first write error is
// kept in Err and later lines are dropped.
type WriterSink struct {
	W   io.Writer
	Err error
}

func (s *WriterSink) WriteLine(text string) {
	if s.Err != nil {
		return
	}
	_, s.Err = fmt.Fprintln(s.W, text)
}
