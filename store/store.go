// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Idris-jose/AnonVote/idgen"
	"github.com/Idris-jose/AnonVote/models"
)

// HistoryLimit is the maximum number of polls kept in history.
const HistoryLimit = 10

// Observer is told about state changes after they are committed. It gets
// its own copy of the poll and is called outside the store lock.
type Observer interface {
	PollCreated(p models.Poll)
	VoteRecorded(p models.Poll, optionIndex int)
}

type Option func(*Store)

// WithClock sets the clock used for Poll.CreatedAt.
func WithClock(now models.Clock) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the poll id source.
func WithIDGenerator(newID models.IDGenerator) Option {
	return func(s *Store) { s.newID = newID }
}

// WithObserver adds an observer. May be given more than once.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, o) }
}

// Store holds the poll being viewed and the most recent polls.
// All methods are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	current *models.Poll
	history []models.Poll // most recent first

	now       models.Clock
	newID     models.IDGenerator
	observers []Observer
}

func New(opts ...Option) *Store {
	s := &Store{
		now:     time.Now,
		newID:   idgen.NewPollID,
		history: make([]models.Poll, 0, HistoryLimit),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a poll from d, makes it current and puts it at the front of
// history, evicting the oldest entry when history is full.
func (s *Store) Create(d models.ValidatedDraft) (models.Poll, error) {
	if !d.Valid() {
		return models.Poll{}, models.ErrTooFewOptions
	}

	s.mu.Lock()
	p := models.NewPoll(d, s.newID, s.now)
	s.current = &p

	if len(s.history) == HistoryLimit {
		evicted := s.history[HistoryLimit-1]
		s.history = s.history[:HistoryLimit-1]
		slog.Debug("history entry evicted", "poll_id", evicted.ID)
	}
	s.history = append(s.history, models.Poll{})
	copy(s.history[1:], s.history)
	s.history[0] = p
	s.mu.Unlock()

	for _, o := range s.observers {
		o.PollCreated(p.Clone())
	}
	return p.Clone(), nil
}

// Vote records one vote for optionIndex on the poll with pollID. Every call
// counts; there is no voter identity to deduplicate on.
func (s *Store) Vote(pollID string, optionIndex int) (models.Poll, error) {
	s.mu.Lock()
	p, ok := s.lookupLocked(pollID)
	if !ok {
		s.mu.Unlock()
		return models.Poll{}, models.ErrPollNotFound
	}

	next, err := models.ApplyVote(p, optionIndex)
	if err != nil {
		s.mu.Unlock()
		return models.Poll{}, err
	}
	s.replaceLocked(next)
	s.mu.Unlock()

	for _, o := range s.observers {
		o.VoteRecorded(next.Clone(), optionIndex)
	}
	return next.Clone(), nil
}

// Update replaces the stored poll with the same id. TotalVotes is
// recomputed from p's options; the option list itself must be unchanged
// and no option's count may be negative or lower than the stored one.
func (s *Store) Update(p models.Poll) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.lookupLocked(p.ID)
	if !ok {
		return models.Poll{}, models.ErrPollNotFound
	}
	if !stored.SameOptions(p) {
		return models.Poll{}, models.ErrOptionsChanged
	}
	for i, opt := range p.Options {
		if opt.Votes < 0 || opt.Votes < stored.Options[i].Votes {
			return models.Poll{}, fmt.Errorf("%w: option %d has %d, stored %d",
				models.ErrInvalidVotes, i, opt.Votes, stored.Options[i].Votes)
		}
	}

	next := p.Clone()
	next.TotalVotes = models.SumVotes(next.Options)
	s.replaceLocked(next)
	return next.Clone(), nil
}

// Get returns the current poll if its id matches, else the first history
// entry with that id.
func (s *Store) Get(pollID string) (models.Poll, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.lookupLocked(pollID)
	if !ok {
		return models.Poll{}, false
	}
	return p.Clone(), true
}

func (s *Store) Current() (models.Poll, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Poll{}, false
	}
	return s.current.Clone(), true
}

// SetCurrent makes the history entry with pollID the current poll. History
// order is not changed.
func (s *Store) SetCurrent(pollID string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.lookupLocked(pollID)
	if !ok {
		return models.Poll{}, models.ErrPollNotFound
	}
	s.current = &p
	return p.Clone(), nil
}

// History returns copies of the history entries, most recent first.
func (s *Store) History() []models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Poll, len(s.history))
	for i, p := range s.history {
		out[i] = p.Clone()
	}
	return out
}

// lookupLocked must be called with s.mu held.
func (s *Store) lookupLocked(pollID string) (models.Poll, bool) {
	if s.current != nil && s.current.ID == pollID {
		return *s.current, true
	}
	for _, p := range s.history {
		if p.ID == pollID {
			return p, true
		}
	}
	return models.Poll{}, false
}

// replaceLocked swaps in p for the current poll and the history entry with
// the same id, keeping the history position.
func (s *Store) replaceLocked(p models.Poll) {
	if s.current != nil && s.current.ID == p.ID {
		cur := p
		s.current = &cur
	}
	for i := range s.history {
		if s.history[i].ID == p.ID {
			s.history[i] = p
			break
		}
	}
}
