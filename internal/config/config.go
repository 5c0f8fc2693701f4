// Package config reads process configuration from the environment. A .env
// file in the working directory is honored when present; explicit CLI flags
// take precedence over everything here.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"FOODLOG_DB,default="`
	// CataloguePath points at a YAML food list replacing the embedded one.
	CataloguePath string `env:"FOODLOG_CATALOGUE,default="`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"FOODLOG_LOG_LEVEL,default=warn"`
}

func Load() (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
