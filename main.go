// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Idris-jose/AnonVote/cliparse"
	"github.com/Idris-jose/AnonVote/db"
	"github.com/Idris-jose/AnonVote/metrics"
	"github.com/Idris-jose/AnonVote/router"
	"github.com/Idris-jose/AnonVote/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Metrics
	reg := prometheus.NewRegistry()
	opts := []store.Option{store.WithObserver(metrics.New(reg))}

	// Journal
	var journal *db.Journal
	if cfg.JournalEnabled() {
		journal, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("journal open failed", "error", err, "type", cfg.DatabaseType)
			os.Exit(1)
		}
		defer journal.Close()
		opts = append(opts, store.WithObserver(journal))
		slog.Info("Journal ready", "type", cfg.DatabaseType)
	}

	st := store.New(opts...)
	rt := router.NewRouter(st, journal, reg, cfg)

	// Read lines on a separate goroutine so Ctrl-C can end the loop
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			slog.Error("read failed", "error", err)
		}
	}()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	slog.Info("AnonVote ready", "origin", cfg.Origin)
	router.Prompt(os.Stdout)
	for {
		select {
		case <-ctrlc:
			slog.Info("Interrupted")
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if err := rt.Dispatch(os.Stdout, line); errors.Is(err, router.ErrQuit) {
				return
			}
			router.Prompt(os.Stdout)
		}
	}
}
