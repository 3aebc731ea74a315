// Package config loads session configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DBPath overrides the default ledger location (~/.hungerford.db).
	DBPath string `env:"HH_DB_PATH"`

	// CatalogPath points at a catalog YAML file. Empty means the
	// built-in baseline catalog.
	CatalogPath string `env:"HH_CATALOG"`

	// CriticalXP is the reward threshold for the critical-work query;
	// urgent quests are always included regardless.
	CriticalXP int `env:"HH_CRITICAL_XP" envDefault:"75"`
}

// FromEnv parses configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
