// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"

	"github.com/Idris-jose/AnonVote/models"
)

// ErrEmptyCommand is returned by ParseCommand for a blank line
var ErrEmptyCommand = errors.New("empty command")

// ErrUsage marks a command called with the wrong arguments
var ErrUsage = errors.New("usage")

// ErrNoCurrentPoll is returned when a command defaults to the current poll
// and none has been created or joined
var ErrNoCurrentPoll = errors.New("no current poll")

// Request is one parsed command line
type Request struct {
	Name string
	Args []string
	Line string
}

// Arg returns the i-th argument or "" when there are fewer.
func (r *Request) Arg(i int) string {
	if i < 0 || i >= len(r.Args) {
		return ""
	}
	return r.Args[i]
}

// HandlerFunc handles one command and writes its output to w
type HandlerFunc func(w io.Writer, r *Request)

// ParseCommand splits a line shell-style. The first word is lowercased and
// becomes the command name.
func ParseCommand(line string) (*Request, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("parse command: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}

	return &Request{
		Name: strings.ToLower(words[0]),
		Args: words[1:],
		Line: line,
	}, nil
}

// WithLogging wraps a handler with command logging
func WithLogging(next HandlerFunc) HandlerFunc {
	return func(w io.Writer, r *Request) {
		start := time.Now()

		slog.Debug("command started",
			"command", r.Name,
			"args", len(r.Args),
		)

		next(w, r)

		slog.Debug("command completed",
			"command", r.Name,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// JSONResponse writes data as indented JSON
func JSONResponse(w io.Writer, data any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes the user-facing message for err
func ErrorResponse(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorMessage(err))
}

// ErrorMessage maps known errors to the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyQuestion), errors.Is(err, models.ErrTooFewOptions):
		return "Please fill in the question and at least two options."
	case errors.Is(err, models.ErrPollNotFound):
		return "Poll not found."
	case errors.Is(err, models.ErrIndexOutOfRange):
		return "That option does not exist."
	case errors.Is(err, models.ErrOptionsChanged):
		return "The poll options cannot be changed."
	case errors.Is(err, models.ErrInvalidVotes):
		return "Vote counts cannot be negative or go down."
	case errors.Is(err, ErrNoCurrentPoll):
		return "No poll yet. Create one with: create \"<question>\" <option> <option>"
	case errors.Is(err, ErrUsage):
		return "Usage: " + strings.TrimPrefix(err.Error(), ErrUsage.Error()+": ")
	default:
		slog.Error("command failed", "error", err)
		return "Something went wrong: " + err.Error()
	}
}

// Usage builds an ErrUsage error carrying the expected syntax.
func Usage(syntax string) error {
	return fmt.Errorf("%w: %s", ErrUsage, syntax)
}
