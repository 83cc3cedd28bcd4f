package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StaticOwnershipSource stands in for the listing-ownership system, which
// lives outside this service. It answers which catalog properties a user
// has listed; with no entries every dashboard simply shows rentals only.
type StaticOwnershipSource struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]string
}

func NewStaticOwnershipSource() *StaticOwnershipSource {
	return &StaticOwnershipSource{
		byUser: make(map[uuid.UUID][]string),
	}
}

func (s *StaticOwnershipSource) Grant(userID uuid.UUID, propertyIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = append(s.byUser[userID], propertyIDs...)
}

func (s *StaticOwnershipSource) ListOwnedPropertyIDs(_ context.Context, userID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}
