package bankacct_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/bankacct"
)

func TestDecodeConfig(t *testing.T) {
	t.Run("an empty document yields the defaults", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		cfg, err := bankacct.DecodeConfig(strings.NewReader(""))
		reqrd.NoError(err)
		as.Equal(bankacct.DefaultConfig(), *cfg)
		as.Equal("€", cfg.Statement.Currency)
		as.Equal(int32(1), cfg.Statement.Precision)
		as.NoError(cfg.Validate())
	})

	t.Run("overrides only the keys present", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		doc := `
statement:
  currency: "$"
log:
  level: debug
node:
  enabled: true
  id: 7
`
		cfg, err := bankacct.DecodeConfig(strings.NewReader(doc))
		reqrd.NoError(err)
		as.Equal("$", cfg.Statement.Currency)
		as.Equal(int32(1), cfg.Statement.Precision)
		as.Equal(bankacct.DefaultDateLayout, cfg.Statement.DateLayout)
		as.Equal(zerolog.DebugLevel, cfg.LogLevel())
		as.True(cfg.Node.Enabled)
		as.Equal(int64(7), cfg.Node.ID)
	})

	t.Run("returns an error on malformed YAML", func(tt *testing.T) {
		_, err := bankacct.DecodeConfig(strings.NewReader("statement: [unterminated"))
		assert.Error(tt, err)
	})
}

func TestApplyEnv(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	t.Setenv("BANKACCT_STATEMENT_CURRENCY", "CHF")
	t.Setenv("BANKACCT_STATEMENT_PRECISION", "2")
	t.Setenv("BANKACCT_LOG_LEVEL", "warn")

	cfg := bankacct.DefaultConfig()
	reqrd.NoError(bankacct.ApplyEnv(&cfg))
	as.Equal("CHF", cfg.Statement.Currency)
	as.Equal(int32(2), cfg.Statement.Precision)
	as.Equal(bankacct.DefaultDateLayout, cfg.Statement.DateLayout)
	as.Equal(zerolog.WarnLevel, cfg.LogLevel())
}

func TestConfigValidate(t *testing.T) {
	as := assert.New(t)
	cfg := bankacct.DefaultConfig()
	cfg.Statement.Precision = -1
	cfg.Log.Level = "loud"
	cfg.Node.Enabled = true
	cfg.Node.ID = 4096

	err := cfg.Validate()
	invalid := bankacct.ErrInvalidConfig{}
	require.ErrorAs(t, err, &invalid)
	as.Contains(invalid.Fields, "statement.precision")
	as.Contains(invalid.Fields, "log.level")
	as.Contains(invalid.Fields, "node.id")
}

func TestConfigWiring(t *testing.T) {
	t.Run("render options follow the statement section", func(tt *testing.T) {
		as := assert.New(tt)
		cfg := bankacct.DefaultConfig()
		cfg.Statement.Currency = "$"
		cfg.Statement.Precision = 2

		buf := new(strings.Builder)
		sink := &bankacct.WriterSink{W: buf}
		log := bankacct.NewOperationLog()
		log.Append(bankacct.Deposit, dec("1"), "D")
		bankacct.NewHistoryRenderer(sink, cfg.RenderOptions()...).Render(log)
		as.Contains(buf.String(), "D | DEPOSIT | 1.00$ | 1.00$")
	})

	t.Run("log options are empty unless the node is enabled", func(tt *testing.T) {
		as := assert.New(tt)
		cfg := bankacct.DefaultConfig()
		opts, err := cfg.LogOptions()
		as.NoError(err)
		as.Empty(opts)

		cfg.Node.Enabled = true
		cfg.Node.ID = 3
		opts, err = cfg.LogOptions()
		as.NoError(err)
		as.Len(opts, 1)
		op := bankacct.NewOperationLog(opts...).Append(bankacct.Deposit, dec("1"), "D")
		as.Equal(int64(3), op.ID.Node())
	})
}
