// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Idris-jose/AnonVote/cliparse"
	"github.com/Idris-jose/AnonVote/db"
	"github.com/Idris-jose/AnonVote/handlers"
	"github.com/Idris-jose/AnonVote/middleware"
	"github.com/Idris-jose/AnonVote/store"
)

// ErrQuit is returned by Dispatch for quit and exit
var ErrQuit = errors.New("quit")

const helpText = `Commands:
  create "<question>" <option> <option> [...]   create a poll and make it current
  show [id]                                     show a poll
  vote <n> [id]                                 vote for option n
  results [id]                                  ranked results
  join <id>                                     make a poll from history current
  history                                       recent polls, newest first
  link [id]                                     share link
  export [id]                                   poll as JSON
  audit [id]                                    compare votes with the journal
  stats                                         metrics
  help                                          this text
  quit, exit                                    leave
[id] defaults to the current poll.
`

// Router maps command names to handlers. One Router is one user session.
type Router struct {
	routes map[string]middleware.HandlerFunc
}

// NewRouter wires all handlers. journal may be nil.
func NewRouter(st *store.Store, journal *db.Journal, gatherer prometheus.Gatherer, cfg cliparse.Config) *Router {
	session := handlers.NewSession()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, session)
	resultsHandler := handlers.NewResultsHandler(st, session)
	auditHandler := handlers.NewAuditHandler(st, journal, gatherer)

	routes := map[string]middleware.HandlerFunc{
		// Poll management
		"create":  middleware.WithLogging(pollHandler.CreatePoll),
		"join":    middleware.WithLogging(pollHandler.JoinPoll),
		"history": middleware.WithLogging(pollHandler.ListHistory),
		"link":    middleware.WithLogging(pollHandler.ShareLinkCmd),
		"export":  middleware.WithLogging(pollHandler.ExportPoll),

		// Voting
		"vote": middleware.WithLogging(votingHandler.Vote),

		// Results
		"show":    middleware.WithLogging(resultsHandler.ShowPoll),
		"results": middleware.WithLogging(resultsHandler.ShowResults),

		// Audit
		"audit": middleware.WithLogging(auditHandler.Audit),
		"stats": middleware.WithLogging(auditHandler.Stats),

		"help": func(w io.Writer, r *middleware.Request) {
			fmt.Fprint(w, helpText)
		},
	}

	return &Router{routes: routes}
}

// Dispatch runs one input line. Blank lines do nothing. It returns ErrQuit
// when the user asks to leave; handler errors are printed, not returned.
func (rt *Router) Dispatch(w io.Writer, line string) error {
	req, err := middleware.ParseCommand(line)
	if errors.Is(err, middleware.ErrEmptyCommand) {
		return nil
	}
	if err != nil {
		fmt.Fprintf(w, "Could not read that line: %v\n", err)
		return nil
	}

	if req.Name == "quit" || req.Name == "exit" {
		return ErrQuit
	}

	h, ok := rt.routes[req.Name]
	if !ok {
		fmt.Fprintf(w, "Unknown command %q. Type help for a list.\n", req.Name)
		return nil
	}
	h(w, req)
	return nil
}

// Commands returns the registered command names, sorted
func (rt *Router) Commands() []string {
	names := make([]string, 0, len(rt.routes))
	for name := range rt.routes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Prompt is printed before each line is read.
func Prompt(w io.Writer) {
	fmt.Fprint(w, "> ")
}
