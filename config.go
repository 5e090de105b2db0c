package bankacct

import (
	"errors"
	"io"

	"github.com/bwmarrin/snowflake"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "BANKACCT_"

type StatementConfig struct {
	Currency   string `yaml:"currency" env:"CURRENCY"`
	Precision  int32  `yaml:"precision" env:"PRECISION"`
	DateLayout string `yaml:"date_layout" env:"DATE_LAYOUT"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

type NodeConfig struct {
	Enabled bool  `yaml:"enabled" env:"ENABLED"`
	ID      int64 `yaml:"id" env:"ID"`
}

type Config struct {
	Statement StatementConfig `yaml:"statement" envPrefix:"STATEMENT_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Node      NodeConfig      `yaml:"node" envPrefix:"NODE_"`
}

func DefaultConfig() Config {
	return Config{
		Statement: StatementConfig{
			Currency:   DefaultCurrencySymbol,
			Precision:  DefaultPrecision,
			DateLayout: DefaultDateLayout,
		},
		Log: LogConfig{
			Level: zerolog.LevelInfoValue,
		},
	}
}

// DecodeConfig reads a YAML document over the defaults. An empty document yields
// DefaultConfig.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides cfg with any BANKACCT_* variables that are set,
// e.g. BANKACCT_STATEMENT_CURRENCY.
func ApplyEnv(cfg *Config) error {
	return env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
}

func (c Config) Validate() error {
	fields := map[string]string{}
	if c.Statement.Precision < 0 {
		fields["statement.precision"] = "must not be negative"
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		fields["log.level"] = "unknown level"
	}
	if c.Node.Enabled && (c.Node.ID < 0 || c.Node.ID > 1<<snowflake.NodeBits-1) {
		fields["node.id"] = "out of range"
	}
	if len(fields) > 0 {
		return ErrInvalidConfig{Fields: fields}
	}
	return nil
}

func (c Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c Config) RenderOptions() []RenderOption {
	return []RenderOption{
		WithFormat(Format{
			Currency:  c.Statement.Currency,
			Precision: c.Statement.Precision,
		}),
	}
}

func (c Config) DateSource() DateSource {
	return ClockDate{Layout: c.Statement.DateLayout}
}

func (c Config) LogOptions() ([]LogOption, error) {
	if !c.Node.Enabled {
		return nil, nil
	}
	node, err := snowflake.NewNode(c.Node.ID)
	if err != nil {
		return nil, err
	}
	return []LogOption{WithIDNode(node)}, nil
}
