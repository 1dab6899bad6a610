// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the AnonVote terminal.

AnonVote runs anonymous multiple-choice polls. A creator enters a question
and at least two options; participants vote once each and see live
percentages. The current poll and the ten most recent polls are kept in
memory.

# Starting

	go run .

With flags:

	go run . -t postgres -d "postgres://..." -origin https://vote.example.com

# Configuration

All settings are optional:

  - DATABASE_TYPE (-t): journal backend, sqlite, postgres or none (default: sqlite)
  - DATABASE_URL (-d): journal connection string (default: in-memory sqlite)
  - POLL_ORIGIN (-origin): share link origin (default: http://localhost:5173)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

A .env file in the working directory is loaded first when present.

# Session

	> create "Pizza or Tacos?" Pizza Tacos
	Created poll 0193...
	Share: http://localhost:5173/poll/0193...
	> vote 2
	Voted for "Tacos" (100% of 1 votes)
	> results

Type help for all commands. Logs go to stderr, output to stdout.

# Architecture

  - models: poll types, validation and tally math
  - store: current poll and bounded history behind one mutex
  - idgen: poll and event ids
  - db: write-only vote journal (sqlite or postgres)
  - metrics: Prometheus counters fed by the store
  - handlers: one method per command
  - router: command table and dispatch
  - middleware: command parsing, logging, error text
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
