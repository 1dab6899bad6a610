// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sync"

	"github.com/Idris-jose/AnonVote/middleware"
	"github.com/Idris-jose/AnonVote/models"
	"github.com/Idris-jose/AnonVote/store"
)

// Session is the state of one interactive user: the polls they voted on.
// The store itself does not deduplicate votes.
type Session struct {
	mu    sync.Mutex
	voted map[string]bool
}

func NewSession() *Session {
	return &Session{voted: make(map[string]bool)}
}

func (s *Session) HasVoted(pollID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voted[pollID]
}

// MarkVoted records a vote on pollID. It returns false if one was already
// recorded.
func (s *Session) MarkVoted(pollID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.voted[pollID] {
		return false
	}
	s.voted[pollID] = true
	return true
}

// unmarkVoted releases a mark whose vote did not go through.
func (s *Session) unmarkVoted(pollID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.voted, pollID)
}

// resolvePoll returns the poll named by id, or the current poll when id is
// empty.
func resolvePoll(st *store.Store, id string) (models.Poll, error) {
	if id == "" {
		p, ok := st.Current()
		if !ok {
			return models.Poll{}, middleware.ErrNoCurrentPoll
		}
		return p, nil
	}

	p, ok := st.Get(id)
	if !ok {
		return models.Poll{}, models.ErrPollNotFound
	}
	return p, nil
}
