// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the poll data shape and the pure rules that derive it.

Nothing in this package holds state; the store package owns the canonical
copies.

# Domain Types

  - Option: option text and its vote counter
  - Poll: id, question, ordered options, derived total, creation time
  - ValidatedDraft: creator input that passed ValidateDraft

# Rules

	d, err := models.ValidateDraft("Pizza or Tacos?", []string{"Pizza", "Tacos", ""})
	p := models.NewPoll(d, idgen.NewPollID, time.Now)
	p, err = models.ApplyVote(p, 1)
	pct := models.VotePercentage(p, 1) // 100
	pct = models.Percentage(3, 8)      // 38, for a count already in hand

TotalVotes is always the sum of Option.Votes. ApplyVote recomputes it from
the options instead of incrementing it, and never modifies its argument.

RankedOptions is a stable sort by votes descending, so tied options keep
their creation order.

# Errors

Validation:

	ErrEmptyQuestion
	ErrTooFewOptions

Voting and updates:

	ErrPollNotFound
	ErrIndexOutOfRange
	ErrOptionsChanged
	ErrInvalidVotes

Match them with errors.Is; ApplyVote wraps ErrIndexOutOfRange with the
offending index.
*/
package models
