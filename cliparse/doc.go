// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseType: journal backend, sqlite, postgres or none (default: sqlite)
  - DatabaseURL: journal connection string (default: in-memory sqlite)
  - Origin: base URL for share links (default: http://localhost:5173)
  - LogLevel: slog level (default: info)
  - EnvFile: file loaded into the environment first (default: .env)

# CLI Flags

	-t          Journal database type
	-d          Journal database URL
	-origin     Share link origin
	-log-level  Log level
	-env        Env file

# Environment Variables

Flags fall back to environment variables:

	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	POLL_ORIGIN   → -origin
	LOG_LEVEL     → -log-level

Before the environment is read, EnvFile is loaded with godotenv. A missing
file is ignored. Values already in the environment are never replaced by
the file, so the order is flag, environment, env file, default.

# Validation

ParseFlags returns an error if:

  - the database type is not sqlite, postgres or none
  - the type is postgres and no URL is given
  - the log level cannot be parsed
*/
package cliparse
