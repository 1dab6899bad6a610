// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the command plumbing shared by all handlers.

# Parsing

ParseCommand splits a line the way a shell would, so quoted questions and
options keep their spaces:

	req, err := middleware.ParseCommand(`create "Best food?" Pizza Tacos`)
	// req.Name == "create", req.Args == ["Best food?", "Pizza", "Tacos"]

# Command Logging

Wrap handlers with command logging:

	routes["vote"] = middleware.WithLogging(votingHandler.Vote)

Logs command start (name, arg count) and completion (duration_ms) at debug
level.

# Output Helpers

Write JSON:

	middleware.JSONResponse(w, poll)

Write an error:

	middleware.ErrorResponse(w, err)

ErrorResponse is the only place where core errors become user text.
Validation errors print "Please fill in the question and at least two
options."; unknown errors are logged and printed verbatim.
*/
package middleware
