// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds poll state for one process: the poll currently being
viewed plus a short history of recent polls.

# Creating a Store

There is no package-level store. Build one at startup and pass it to
whatever needs it:

	st := store.New(
		store.WithObserver(journal),
		store.WithObserver(recorder),
	)

WithClock and WithIDGenerator replace time.Now and idgen.NewPollID, which
keeps tests deterministic.

# Operations

	p, err := st.Create(draft)        // current = p, history = [p, ...]
	p, err = st.Vote(p.ID, 1)         // ErrPollNotFound, ErrIndexOutOfRange
	p, ok := st.Get(id)               // current first, then history
	p, ok = st.Current()
	p, err = st.SetCurrent(id)        // join a poll from history
	p, err = st.Update(p)             // same options, counts never drop; totals re-derived
	polls := st.History()             // most recent first

Every Poll returned is a private copy. Changing it does not change the
store; submit changes through Vote or Update.

# History

History holds at most HistoryLimit (10) polls. Create puts the new poll at
the front and drops the oldest one when full. Vote and Update replace the
matching entry where it is; they do not move it to the front.

# Concurrency

One mutex guards all state. Vote reads the tally and writes the new one in a
single critical section, so concurrent votes are never lost. Observers run
after the lock is released, in registration order. With concurrent callers
an observer may therefore see events for the same poll out of order, or
lag behind what Get returns.
*/
package store
