// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the command handlers for the AnonVote terminal.

# Handler Types

Each handler is a struct with its dependencies injected by a constructor:

  - PollHandler: create, join, history, link, export
  - VotingHandler: vote
  - ResultsHandler: show, results
  - AuditHandler: audit, stats

	pollHandler := handlers.NewPollHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, session)

Every handler method has the middleware.HandlerFunc signature and writes
its output, including errors, to the given writer.

# Poll Selection

Commands that take an optional [id] fall back to the current poll. With no
current poll they print a hint to create one.

# Sessions

A Session remembers which polls the user voted on. The store counts every
vote it is given, so the one-vote-per-poll rule lives here:

	vote 1    → Voted for "Pizza" (100% of 1 votes)
	vote 2    → You have already voted on this poll.

show hides vote counts until the session has voted on the poll. results
always shows them, ranked with ties in original order.

# Display

Creation times are relative ("3 minutes ago"), counts use thousands
separators and ranks use ordinals, all through go-humanize. Percentages
are computed per option and need not sum to 100.

# Auditing

audit compares each option's count with the journal's tally. The journal
is written after the store changes, so a vote in flight can show up as a
mismatch that clears on the next audit; the output says so. It reports
"Journal is disabled." when the journal was turned off with -t none.
*/
package handlers
