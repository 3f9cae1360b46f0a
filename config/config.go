package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Log    LogConfig   `toml:"log"`
	Chain  ChainConfig `toml:"chain"`
	Output string      `toml:"output"` // panels|json
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug|info|warn|error
	Format string `toml:"format"` // pretty|json
}

type ChainConfig struct {
	Entries []string `toml:"entries"`
	// PowTimeout bounds each proof-of-work search; "0" disables the bound.
	PowTimeout string `toml:"pow_timeout"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
		},
		Chain: ChainConfig{
			Entries: []string{
				"Transfer 1 coin from Alice to Bob",
				"Transfer 2 coins from Bob to Charlie",
			},
			PowTimeout: "0",
		},
		Output: "panels",
	}
}

// PowTimeoutDuration returns the parsed proof-of-work timeout. It is only
// meaningful on a validated Config.
func (c Config) PowTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Chain.PowTimeout)
	return d
}

// Load decodes the TOML file at path over cfg.
func Load(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("loading config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Parse builds the configuration from defaults, an optional TOML file,
// POWLEDGER_* environment variables and flags, in increasing precedence.
// Positional arguments, if any, replace the configured entries.
func Parse(args []string, out io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("pow-ledger", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		configPath = fs.String("config", envOr("POWLEDGER_CONFIG", ""), "Path to a TOML configuration file (optional)")
		logLevel   = fs.String("log.level", cfg.Log.Level, "Log level: debug|info|warn|error")
		logFormat  = fs.String("log.format", cfg.Log.Format, "Log format: pretty|json")
		powTimeout = fs.String("pow.timeout", cfg.Chain.PowTimeout, "Maximum time per proof-of-work search, e.g. 30s (0 = unbounded)")
		output     = fs.String("output", cfg.Output, "Report format: panels|json")
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if p := strings.TrimSpace(*configPath); p != "" {
		if err := Load(p, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Log.Level = envOr("POWLEDGER_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envOr("POWLEDGER_LOG_FORMAT", cfg.Log.Format)
	cfg.Chain.PowTimeout = envOr("POWLEDGER_POW_TIMEOUT", cfg.Chain.PowTimeout)
	cfg.Output = envOr("POWLEDGER_OUTPUT", cfg.Output)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log.level":
			cfg.Log.Level = strings.TrimSpace(*logLevel)
		case "log.format":
			cfg.Log.Format = strings.TrimSpace(*logFormat)
		case "pow.timeout":
			cfg.Chain.PowTimeout = strings.TrimSpace(*powTimeout)
		case "output":
			cfg.Output = strings.TrimSpace(*output)
		}
	})

	if fs.NArg() > 0 {
		cfg.Chain.Entries = fs.Args()
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level: %q", cfg.Log.Level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid log.format: %q", cfg.Log.Format)
	}

	switch strings.ToLower(cfg.Output) {
	case "panels", "json":
	default:
		return fmt.Errorf("invalid output: %q", cfg.Output)
	}

	d, err := time.ParseDuration(cfg.Chain.PowTimeout)
	if err != nil {
		return fmt.Errorf("invalid pow.timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("pow.timeout must not be negative: %s", d)
	}

	if len(cfg.Chain.Entries) == 0 {
		return errors.New("chain.entries must not be empty")
	}
	return nil
}

func envOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
