// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Idris-jose/AnonVote/cliparse"
	"github.com/Idris-jose/AnonVote/db"
	"github.com/Idris-jose/AnonVote/idgen"
	"github.com/Idris-jose/AnonVote/models"
	"github.com/Idris-jose/AnonVote/store"
)

// TestTime is the creation time of every poll made by NewTestStore
var TestTime = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

// FixedClock always returns TestTime
func FixedClock() time.Time {
	return TestTime
}

// SequentialIDs returns a generator yielding poll-1, poll-2, ...
func SequentialIDs() models.IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("poll-%d", n.Add(1))
	}
}

// NewTestStore creates a store with a fixed clock and sequential ids.
// Extra options are applied after those.
func NewTestStore(opts ...store.Option) *store.Store {
	base := []store.Option{
		store.WithClock(FixedClock),
		store.WithIDGenerator(SequentialIDs()),
	}
	return store.New(append(base, opts...)...)
}

// SetupTestJournal opens a private in-memory sqlite journal that is closed
// when the test ends
func SetupTestJournal(t *testing.T) *db.Journal {
	t.Helper()

	name, err := idgen.GenerateID(8)
	if err != nil {
		t.Fatalf("Failed to generate database name: %v", err)
	}

	j, err := db.Open(db.TypeSQLite, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })

	return j
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  cliparse.DefaultDatabaseURL,
		Origin:       "https://vote.test",
	}
}

// CreateTestPoll validates and creates a poll, failing the test on error
func CreateTestPoll(t *testing.T, st *store.Store, question string, options ...string) models.Poll {
	t.Helper()

	draft, err := models.ValidateDraft(question, options)
	if err != nil {
		t.Fatalf("Failed to validate test poll: %v", err)
	}
	p, err := st.Create(draft)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return p
}

// CastVotes votes once for each index in order
func CastVotes(t *testing.T, st *store.Store, pollID string, indexes ...int) models.Poll {
	t.Helper()

	var p models.Poll
	var err error
	for _, idx := range indexes {
		p, err = st.Vote(pollID, idx)
		if err != nil {
			t.Fatalf("Failed to vote for %d: %v", idx, err)
		}
	}
	return p
}
