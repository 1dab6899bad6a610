// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes poll activity as Prometheus collectors.

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	st := store.New(store.WithObserver(rec))

Collectors:

  - anonvote_polls_created_total
  - anonvote_votes_total
  - anonvote_poll_options (histogram of option counts)
  - anonvote_last_voted_poll_total_votes (concurrent votes may set it out
    of order)

There is no HTTP endpoint. Write renders a gatherer in the text format for
the stats command.
*/
package metrics
