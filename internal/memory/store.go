package memory

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain/registry"
)

// Store implements registry.Store with an in-process map. All state is lost
// on restart, which is the intended contract for this service.
type Store struct {
	mu         sync.RWMutex
	activities map[string]registry.Activity
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{activities: make(map[string]registry.Activity)}
}

// Seed replaces the store contents with a deep copy of the given dataset.
func (s *Store) Seed(_ context.Context, activities map[string]registry.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = make(map[string]registry.Activity, len(activities))
	for name, act := range activities {
		s.activities[name] = act.Clone()
	}
	return nil
}

// List returns a deep-copied snapshot of every activity.
func (s *Store) List(_ context.Context) (map[string]registry.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]registry.Activity, len(s.activities))
	for name, act := range s.activities {
		out[name] = act.Clone()
	}
	return out, nil
}

// Get returns a deep copy of one activity.
func (s *Store) Get(_ context.Context, name string) (registry.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, ok := s.activities[name]
	if !ok {
		return registry.Activity{}, registry.ErrActivityNotFound
	}
	return act.Clone(), nil
}

// AddParticipant appends email to the activity's participant list. The lock
// is held across check and append so concurrent signups cannot both pass the
// duplicate check.
func (s *Store) AddParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return registry.ErrActivityNotFound
	}
	if act.HasParticipant(email) {
		return registry.ErrAlreadySignedUp
	}
	act.Participants = append(act.Participants, email)
	s.activities[name] = act
	return nil
}

// RemoveParticipant removes email from the activity's participant list.
func (s *Store) RemoveParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return registry.ErrActivityNotFound
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			s.activities[name] = act
			return nil
		}
	}
	return registry.ErrNotSignedUp
}
