// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Idris-jose/AnonVote/middleware"
	"github.com/Idris-jose/AnonVote/models"
	"github.com/Idris-jose/AnonVote/store"
)

type VotingHandler struct {
	store   *store.Store
	session *Session
}

func NewVotingHandler(st *store.Store, session *Session) *VotingHandler {
	return &VotingHandler{store: st, session: session}
}

// Vote handles: vote <n> [id]
// n is the option number as displayed, starting at 1.
func (h *VotingHandler) Vote(w io.Writer, r *middleware.Request) {
	n, err := strconv.Atoi(r.Arg(0))
	if err != nil {
		middleware.ErrorResponse(w, middleware.Usage("vote <n> [id]"))
		return
	}

	poll, err := resolvePoll(h.store, r.Arg(1))
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	// claim the session's vote before counting it
	if !h.session.MarkVoted(poll.ID) {
		fmt.Fprintln(w, "You have already voted on this poll.")
		return
	}

	updated, err := h.store.Vote(poll.ID, n-1)
	if err != nil {
		h.session.unmarkVoted(poll.ID)
		middleware.ErrorResponse(w, err)
		return
	}

	slog.Info("vote recorded", "poll_id", poll.ID, "option_index", n-1)

	fmt.Fprintf(w, "Voted for %q (%d%% of %d votes)\n",
		updated.Options[n-1].Text,
		models.VotePercentage(updated, n-1),
		updated.TotalVotes,
	)
}
