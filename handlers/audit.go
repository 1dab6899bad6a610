// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Idris-jose/AnonVote/db"
	"github.com/Idris-jose/AnonVote/metrics"
	"github.com/Idris-jose/AnonVote/middleware"
	"github.com/Idris-jose/AnonVote/store"
)

const auditTimeout = 5 * time.Second

// journal writes happen after the store has changed
const auditPendingNote = "Votes cast during the audit may not be journaled yet; run audit again before treating this as lost data."

// AuditHandler compares the store with the journal and prints metrics.
// journal may be nil when journaling is disabled.
type AuditHandler struct {
	store    *store.Store
	journal  *db.Journal
	gatherer prometheus.Gatherer
}

func NewAuditHandler(st *store.Store, journal *db.Journal, gatherer prometheus.Gatherer) *AuditHandler {
	return &AuditHandler{store: st, journal: journal, gatherer: gatherer}
}

// Audit handles: audit [id]
func (h *AuditHandler) Audit(w io.Writer, r *middleware.Request) {
	if h.journal == nil {
		fmt.Fprintln(w, "Journal is disabled.")
		return
	}

	poll, err := resolvePoll(h.store, r.Arg(0))
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	tally, err := h.journal.Tally(ctx, poll.ID)
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	mismatches := 0
	for i, opt := range poll.Options {
		journaled := 0
		if i < len(tally) {
			journaled = tally[i]
		}
		if journaled != opt.Votes {
			mismatches++
			fmt.Fprintf(w, "  %d. %s: store %d, journal %d\n", i+1, opt.Text, opt.Votes, journaled)
		}
	}
	if len(tally) != len(poll.Options) {
		mismatches++
		fmt.Fprintf(w, "  journal has %d options, store has %d\n", len(tally), len(poll.Options))
	}

	if mismatches > 0 {
		slog.Warn("journal mismatch", "poll_id", poll.ID, "mismatches", mismatches)
		fmt.Fprintf(w, "Audit failed: %d mismatches\n", mismatches)
		fmt.Fprintln(w, auditPendingNote)
		return
	}
	fmt.Fprintf(w, "Audit OK: %d votes match the journal\n", poll.TotalVotes)
}

// Stats handles: stats
func (h *AuditHandler) Stats(w io.Writer, r *middleware.Request) {
	if err := metrics.Write(w, h.gatherer); err != nil {
		middleware.ErrorResponse(w, err)
	}
}
