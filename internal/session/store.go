// Package session holds per-user questionnaire state. Each interactive
// session gets an explicit state struct with a defined lifecycle: created at
// session start, discarded at session end, never shared across users.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lifeminuswork/readiness-check/internal/types"
	"github.com/lifeminuswork/readiness-check/internal/verification"
)

// State is the mutable state of one questionnaire session.
type State struct {
	ID         uuid.UUID
	FirstName  string
	Ratings    types.RatingSet
	Reflection string
	Gate       verification.Gate
	CreatedAt  time.Time
}

// Store keeps live sessions in memory, keyed by ID. The store itself is safe
// for concurrent handlers; each State is only ever touched by its own
// session's requests.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*State
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*State)}
}

// Create starts a new session with the sliders preset to the scale midpoint.
func (s *Store) Create() *State {
	state := &State{
		ID:        uuid.New(),
		Ratings:   types.DefaultRatings(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[state.ID] = state
	s.mu.Unlock()

	return state
}

// Get returns the session with the given ID, or nil when it does not exist.
func (s *Store) Get(id uuid.UUID) *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Delete discards a session.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
