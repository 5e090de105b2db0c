package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/arhyth/bankacct"
)

// usage: statement [-config config.yml] [-pdf out.pdf] deposit:100 withdraw:20.5 ...
func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "", "path to configuration file")
	pdfp := flag.String("pdf", "", "write the statement as PDF to this path instead of stdout")
	flag.Parse()

	cfg := bankacct.DefaultConfig()
	if *cfp != "" {
		cfgfl, err := os.Open(*cfp)
		if err != nil {
			logger.Fatal().Err(err).Msg("error opening config file")
		}
		decoded, err := bankacct.DecodeConfig(cfgfl)
		cfgfl.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("error decoding config file")
		}
		cfg = *decoded
	}
	if err := bankacct.ApplyEnv(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error reading environment")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())

	logOpts, err := cfg.LogOptions()
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting ID node")
	}

	var (
		sink bankacct.LineSink
		stmt *bankacct.PDFStatement
		out  = &bankacct.WriterSink{W: os.Stdout}
	)
	if *pdfp != "" {
		stmt = bankacct.NewPDFStatement("Account statement")
		sink = stmt
	} else {
		sink = out
	}

	acct := bankacct.NewAccount(
		cfg.DateSource(),
		bankacct.NewHistoryRenderer(sink, cfg.RenderOptions()...),
		bankacct.WithOperationLog(bankacct.NewOperationLog(logOpts...)),
		bankacct.WithLogger(&logger),
	)
	ledger := bankacct.Chain(acct, bankacct.NewLoggingMiddleware(&logger))

	for _, arg := range flag.Args() {
		if err := apply(ledger, arg); err != nil {
			logger.Error().Err(err).Str("op", arg).Msg("operation rejected")
		}
	}
	ledger.PrintHistory()

	if stmt != nil {
		f, err := os.Create(*pdfp)
		if err != nil {
			logger.Fatal().Err(err).Msg("error creating PDF file")
		}
		defer f.Close()
		if err = stmt.Output(f); err != nil {
			logger.Fatal().Err(err).Msg("error writing PDF statement")
		}
		return
	}
	if out.Err != nil {
		logger.Fatal().Err(out.Err).Msg("error writing statement")
	}
}

func apply(l bankacct.Ledger, arg string) error {
	verb, amt, ok := strings.Cut(arg, ":")
	if !ok {
		return errors.New("expected <deposit|withdraw>:<amount>")
	}
	amount, err := decimal.NewFromString(amt)
	if err != nil {
		return err
	}
	switch strings.ToLower(verb) {
	case "deposit":
		return l.Deposit(amount)
	case "withdraw":
		return l.Withdraw(amount)
	default:
		return errors.New("unknown operation " + verb)
	}
}
