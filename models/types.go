// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"time"
)

// MinOptions is the smallest number of non-blank options a poll can have.
const MinOptions = 2

// Validation errors
var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrTooFewOptions = errors.New("at least two options are required")
)

// Vote and update errors
var (
	ErrPollNotFound    = errors.New("poll not found")
	ErrIndexOutOfRange = errors.New("option index out of range")
	ErrOptionsChanged  = errors.New("poll options cannot change after creation")
	ErrInvalidVotes    = errors.New("vote counts cannot be negative or decrease")
)

// IDGenerator returns a fresh poll id on every call.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// Domain types

// Option is identified by its position in Poll.Options.
type Option struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type Poll struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Options    []Option  `json:"options"`
	TotalVotes int       `json:"total_votes"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidatedDraft is creator input that passed ValidateDraft. The zero value
// is not valid.
type ValidatedDraft struct {
	question string
	options  []string
}

func (d ValidatedDraft) Question() string { return d.question }

// Options returns a copy of the trimmed, non-blank option texts.
func (d ValidatedDraft) Options() []string {
	out := make([]string, len(d.options))
	copy(out, d.options)
	return out
}

// Valid reports whether d came from a successful ValidateDraft.
func (d ValidatedDraft) Valid() bool {
	return d.question != "" && len(d.options) >= MinOptions
}
