// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Idris-jose/AnonVote/middleware"
	"github.com/Idris-jose/AnonVote/models"
	"github.com/Idris-jose/AnonVote/store"
)

// barWidth is the length of a 100% bar in results
const barWidth = 20

type ResultsHandler struct {
	store   *store.Store
	session *Session
}

func NewResultsHandler(st *store.Store, session *Session) *ResultsHandler {
	return &ResultsHandler{store: st, session: session}
}

// ShowPoll handles: show [id]
// Counts stay hidden until this session has voted on the poll.
func (h *ResultsHandler) ShowPoll(w io.Writer, r *middleware.Request) {
	poll, err := resolvePoll(h.store, r.Arg(0))
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	voted := h.session.HasVoted(poll.ID)

	fmt.Fprintln(w, poll.Question)
	fmt.Fprintf(w, "Created %s  ID %s  %s votes\n",
		humanize.Time(poll.CreatedAt), poll.ID, humanize.Comma(int64(poll.TotalVotes)))

	for i, opt := range poll.Options {
		if voted {
			fmt.Fprintf(w, "  %d. %s  %s (%d%%)\n",
				i+1, opt.Text, humanize.Comma(int64(opt.Votes)), models.VotePercentage(poll, i))
		} else {
			fmt.Fprintf(w, "  %d. %s\n", i+1, opt.Text)
		}
	}

	if !voted {
		fmt.Fprintln(w, "Vote with: vote <n>")
	}
}

// ShowResults handles: results [id]
func (h *ResultsHandler) ShowResults(w io.Writer, r *middleware.Request) {
	poll, err := resolvePoll(h.store, r.Arg(0))
	if err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	fmt.Fprintln(w, poll.Question)
	if poll.TotalVotes == 0 {
		fmt.Fprintln(w, "No votes yet")
		return
	}

	for rank, opt := range models.RankedOptions(poll) {
		pct := models.Percentage(opt.Votes, poll.TotalVotes)
		fmt.Fprintf(w, "%4s  %-20s %6s  %3d%%  %s\n",
			humanize.Ordinal(rank+1), opt.Text, humanize.Comma(int64(opt.Votes)), pct, bar(pct))
	}
	fmt.Fprintf(w, "Total: %s votes\n", humanize.Comma(int64(poll.TotalVotes)))
}

func bar(pct int) string {
	n := pct * barWidth / 100
	return strings.Repeat("#", n) + strings.Repeat(".", barWidth-n)
}
