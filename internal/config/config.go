package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

// Config holds the fleet setup command configuration. Env vars provide
// the defaults, flags override them.
type Config struct {
	Stage        string `env:"STAGE" envDefault:"dev"`
	DatabaseUrl  string `env:"DATABASE_URL"`
	MigrationDir string `env:"MIGRATION_DIR" envDefault:"file://db/migration"`
	Locale       string `env:"BATTLESHIP_LOCALE" envDefault:"en-US"`

	Script      string
	JSON        bool
	Interactive bool
}

// AnalyticsEnabled reports whether placement analytics should be recorded.
func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}

// ParseConfig loads .env outside prod, then env vars, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %q", cfg.Stage)
	}

	fs.StringVar(&cfg.Script, "script", "", "file of placement commands to run (default: stdin)")
	fs.BoolVar(&cfg.JSON, "json", false, "read and write one JSON message per line")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "place the host fleet in a terminal UI")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "language of player facing messages (default: BATTLESHIP_LOCALE or en-US)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Interactive && (cfg.JSON || cfg.Script != "") {
		return Config{}, errors.New("-interactive cannot be combined with -json or -script")
	}
	return cfg, nil
}
