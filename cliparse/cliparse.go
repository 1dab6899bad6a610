// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultDatabaseType = "sqlite"
	DefaultDatabaseURL  = "file:anonvote?mode=memory&cache=shared"
	DefaultOrigin       = "http://localhost:5173"
	DefaultEnvFile      = ".env"
)

type Config struct {
	DatabaseType string
	DatabaseURL  string
	Origin       string
	LogLevel     slog.Level
	EnvFile      string
}

// JournalEnabled reports whether votes should be written to a database.
func (c Config) JournalEnabled() bool {
	return c.DatabaseType != "none"
}

// ParseFlags reads flags, then the environment (after loading EnvFile), then
// defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("anonvote", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseType, "t", "", "Journal database type (sqlite, postgres or none)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Journal database URL")
	fs.StringVar(&cfg.Origin, "origin", "", "Origin used for share links")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.EnvFile, "env", DefaultEnvFile, "Env file to load before reading the environment")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !isNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DefaultDatabaseType
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "none":
	default:
		return Config{}, fmt.Errorf("invalid database type %q (want sqlite, postgres or none)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case "sqlite":
			cfg.DatabaseURL = DefaultDatabaseURL
		case "postgres":
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	if cfg.Origin == "" {
		cfg.Origin = os.Getenv("POLL_ORIGIN")
		if cfg.Origin == "" {
			cfg.Origin = DefaultOrigin
		}
	}
	cfg.Origin = strings.TrimRight(cfg.Origin, "/")

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
