// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db keeps a write-only journal of poll creations and votes.

The store is the only source of truth while the process runs. The journal
records what happened so the tallies can be audited; nothing is loaded
back from it on startup.

# Opening

	j, err := db.Open(db.TypeSQLite, "file:anonvote?mode=memory&cache=shared")
	defer j.Close()

TypeSQLite uses modernc.org/sqlite. The URL above is an in-memory
database that disappears with the process. TypePostgres uses lib/pq.
Queries are written with ? placeholders and rebound to $n for postgres.

# Schema Creation

CreateSchema is called by Open and is safe to run repeatedly:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Tables:

  - poll: id, question, created_at
  - poll_option: option text by (poll_id, option_index)
  - vote_event: one row per recorded vote, with the poll total after it

# Recording

Journal implements store.Observer, so registering it with the store is
enough:

	st := store.New(store.WithObserver(j))

Write failures are logged and do not affect the store.

# Auditing

	tally, err := j.Tally(ctx, pollID) // votes per option index

A tally that differs from the store's option counts means events were
lost or the poll was changed through Store.Update.
*/
package db
