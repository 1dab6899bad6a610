// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router maps command names to handlers.

# Route Registration

NewRouter creates a Router with all commands and a fresh session:

	rt := router.NewRouter(st, journal, registry, cfg)

journal may be nil when journaling is disabled. Each Router owns one
handlers.Session, so two routers on the same store vote independently.

# Commands

Poll management:

	create "<question>" <option> <option> [...]
	join <id>
	history
	link [id]
	export [id]

Voting and results:

	vote <n> [id]
	show [id]
	results [id]

Audit:

	audit [id]
	stats

help prints the list; quit and exit make Dispatch return ErrQuit.

# Dispatch

	for scanner.Scan() {
		if err := rt.Dispatch(os.Stdout, scanner.Text()); errors.Is(err, router.ErrQuit) {
			break
		}
	}

Every command except help is wrapped in middleware.WithLogging. Handler
failures are written to the output; Dispatch only returns ErrQuit.
*/
package router
