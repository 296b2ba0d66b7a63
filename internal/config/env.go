package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Settings are the run options read from the environment and overridden
// by command-line flags.
type Settings struct {
	Difficulty  string `env:"NURSESIM_DIFFICULTY"   envDefault:"normal"`
	Seed        int64  `env:"NURSESIM_SEED"`
	BalanceFile string `env:"NURSESIM_BALANCE_FILE"`
	CatalogFile string `env:"NURSESIM_CATALOG_FILE"`
	SummaryFile string `env:"NURSESIM_SUMMARY_FILE"`
	Debug       bool   `env:"NURSESIM_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseSettings reads the environment, then lets flags in args override
// it. A zero seed means "pick one at random".
func ParseSettings(fs *flag.FlagSet, args []string) (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}

	fs.StringVar(&s.Difficulty, "difficulty", s.Difficulty, "balance preset: normal, casual or hard")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "random seed for a reproducible game (0 picks one)")
	fs.StringVar(&s.BalanceFile, "balance", s.BalanceFile, "YAML file overriding balance values")
	fs.StringVar(&s.CatalogFile, "catalog", s.CatalogFile, "YAML scenario catalog replacing the built-in one")
	fs.StringVar(&s.SummaryFile, "summary", s.SummaryFile, "write the end-of-game summary as JSON to this file")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "log engine decisions to stderr")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Balance resolves the difficulty preset and applies BalanceFile on top.
func (s Settings) Balance() (Balance, error) {
	b, err := Preset(s.Difficulty)
	if err != nil {
		return Balance{}, err
	}
	if s.BalanceFile == "" {
		return b, nil
	}
	return LoadBalance(s.BalanceFile, b)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
