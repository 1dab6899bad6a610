// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// ValidateDraft trims the question and option texts, drops blank options and
// checks what is left.
func ValidateDraft(question string, optionTexts []string) (ValidatedDraft, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return ValidatedDraft{}, ErrEmptyQuestion
	}

	opts := make([]string, 0, len(optionTexts))
	for _, text := range optionTexts {
		if t := strings.TrimSpace(text); t != "" {
			opts = append(opts, t)
		}
	}
	if len(opts) < MinOptions {
		return ValidatedDraft{}, ErrTooFewOptions
	}

	return ValidatedDraft{question: q, options: opts}, nil
}

// NewPoll builds a poll with every counter at zero.
func NewPoll(d ValidatedDraft, newID IDGenerator, now Clock) Poll {
	options := make([]Option, len(d.options))
	for i, text := range d.options {
		options[i] = Option{Text: text}
	}

	return Poll{
		ID:         newID(),
		Question:   d.question,
		Options:    options,
		TotalVotes: 0,
		CreatedAt:  now(),
	}
}

// ApplyVote returns a copy of p with one more vote on optionIndex.
// p itself is left untouched.
func ApplyVote(p Poll, optionIndex int) (Poll, error) {
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return Poll{}, fmt.Errorf("%w: %d (poll has %d options)", ErrIndexOutOfRange, optionIndex, len(p.Options))
	}

	next := p.Clone()
	next.Options[optionIndex].Votes++
	next.TotalVotes = SumVotes(next.Options)
	return next, nil
}

// VotePercentage rounds half up. Percentages of one poll may not add up to
// exactly 100.
func VotePercentage(p Poll, optionIndex int) int {
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return 0
	}
	return Percentage(p.Options[optionIndex].Votes, p.TotalVotes)
}

// Percentage is votes out of total, rounded half up and clamped to [0,100].
// It is 0 when total is not positive.
func Percentage(votes, total int) int {
	if total <= 0 || votes <= 0 {
		return 0
	}
	if votes >= total {
		return 100
	}
	// floor(100*v/t + 1/2) without floats
	return (200*votes + total) / (2 * total)
}

// RankedOptions sorts by votes, highest first. Ties keep their original order.
func RankedOptions(p Poll) []Option {
	ranked := slices.Clone(p.Options)
	slices.SortStableFunc(ranked, func(a, b Option) int {
		return cmp.Compare(b.Votes, a.Votes)
	})
	return ranked
}

func SumVotes(options []Option) int {
	total := 0
	for _, o := range options {
		total += o.Votes
	}
	return total
}

// Clone returns a copy of p that shares no memory with it.
func (p Poll) Clone() Poll {
	c := p
	c.Options = slices.Clone(p.Options)
	return c
}

// SameOptions reports whether p and other list the same option texts in the
// same order.
func (p Poll) SameOptions(other Poll) bool {
	return slices.EqualFunc(p.Options, other.Options, func(a, b Option) bool {
		return a.Text == b.Text
	})
}
