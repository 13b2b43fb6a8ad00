package session

import (
	"context"
	"sync"

	"turfbook/internal/domain/squad"
	"turfbook/internal/infra"

	"github.com/google/uuid"
)

// SquadStore holds in-flight rosters in memory. Squads are per-session
// state and are never persisted; the store exists only so the roster
// survives across requests within a session.
type SquadStore struct {
	mu     sync.RWMutex
	squads map[uuid.UUID]*squad.Squad
}

func NewSquadStore() *SquadStore {
	return &SquadStore{
		squads: make(map[uuid.UUID]*squad.Squad),
	}
}

func (s *SquadStore) Save(_ context.Context, sq *squad.Squad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.squads[sq.ID()] = sq
	return nil
}

func (s *SquadStore) Find(_ context.Context, id uuid.UUID) (*squad.Squad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sq, ok := s.squads[id]
	if !ok {
		return nil, infra.WrapRepoErr("squad not found", nil, infra.KindNotFound)
	}
	return sq, nil
}

func (s *SquadStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.squads[id]; !ok {
		return infra.WrapRepoErr("squad not found", nil, infra.KindNotFound)
	}
	delete(s.squads, id)
	return nil
}
