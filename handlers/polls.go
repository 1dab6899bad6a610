// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/Idris-jose/AnonVote/cliparse"
	"github.com/Idris-jose/AnonVote/middleware"
	"github.com/Idris-jose/AnonVote/models"
	"github.com/Idris-jose/AnonVote/store"
)

type PollHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPollHandler(st *store.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: st, cfg: cfg}
}

// CreatePoll handles: create "<question>" <option> <option> [...]
func (h *PollHandler) CreatePoll(w io.Writer, r *middleware.Request) {
	if len(r.Args) == 0 {
		middleware.ErrorResponse(w, middleware.Usage(`create "<question>" <option> <option> [...]`))
		return
	}

	draft, err := models.ValidateDraft(r.Args[0], r.Args[1:])
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	poll, err := h.store.Create(draft)
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "options", len(poll.Options))

	fmt.Fprintf(w, "Created poll %s\n", poll.ID)
	fmt.Fprintf(w, "Share: %s\n", ShareLink(h.cfg.Origin, poll.ID))
}

// JoinPoll handles: join <id>
func (h *PollHandler) JoinPoll(w io.Writer, r *middleware.Request) {
	id := r.Arg(0)
	if id == "" {
		middleware.ErrorResponse(w, middleware.Usage("join <id>"))
		return
	}

	poll, err := h.store.SetCurrent(id)
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	fmt.Fprintf(w, "Joined %q\n", poll.Question)
}

// ListHistory handles: history
func (h *PollHandler) ListHistory(w io.Writer, r *middleware.Request) {
	history := h.store.History()
	if len(history) == 0 {
		fmt.Fprintln(w, "No polls yet.")
		return
	}

	current, _ := h.store.Current()
	for _, p := range history {
		marker := " "
		if p.ID == current.ID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s  %s  (%s votes, %s)\n",
			marker, p.ID, p.Question,
			humanize.Comma(int64(p.TotalVotes)),
			humanize.Time(p.CreatedAt),
		)
	}
}

// ShareLinkCmd handles: link [id]
func (h *PollHandler) ShareLinkCmd(w io.Writer, r *middleware.Request) {
	poll, err := resolvePoll(h.store, r.Arg(0))
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}
	fmt.Fprintln(w, ShareLink(h.cfg.Origin, poll.ID))
}

// ExportPoll handles: export [id]
func (h *PollHandler) ExportPoll(w io.Writer, r *middleware.Request) {
	poll, err := resolvePoll(h.store, r.Arg(0))
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}
	middleware.JSONResponse(w, poll)
}

// ShareLink builds the link participants open to vote on a poll.
func ShareLink(origin, pollID string) string {
	return origin + "/poll/" + pollID
}
