// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/hitandblow/internal/random"
)

// History backends.
const (
	HistoryMemory = "memory"
	HistorySQLite = "sqlite"
)

// Config holds game configuration.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	Locale    string `env:"HITBLOW_LOCALE" envDefault:"en-US"`
	History   string `env:"HITBLOW_HISTORY" envDefault:"memory"`
	Seed      int64  `env:"HITBLOW_SEED"`
	DailySalt string `env:"HITBLOW_DAILY_SALT"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.History {
	case HistoryMemory, HistorySQLite:
	default:
		return Config{}, fmt.Errorf("HITBLOW_HISTORY: unknown backend %q", cfg.History)
	}
	return cfg, nil
}

// ResolveSeed picks the seed for the digit source.
// An explicit seed wins, then the daily salt, then a fresh crypto seed.
func (c Config) ResolveSeed(now time.Time) (int64, error) {
	switch {
	case c.Seed != 0:
		return c.Seed, nil
	case c.DailySalt != "":
		return random.DailySeed(now, c.DailySalt), nil
	default:
		return random.NewSeed()
	}
}
