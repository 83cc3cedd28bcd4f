package memstore

import (
	"context"
	"sync"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/rental"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"

	"github.com/google/uuid"
)

// RentalStore holds derived tenancy records. Rentals are write-once; there
// is no update path.
type RentalStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*rental.Rental
}

func NewRentalStore() *RentalStore {
	return &RentalStore{
		byID: make(map[string]*rental.Rental),
	}
}

func (s *RentalStore) Create(_ context.Context, r *rental.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID()]; exists {
		return infra.WrapRepoErr("rental id already exists", nil, infra.KindDuplicateKey)
	}
	s.byID[r.ID()] = r
	s.order = append(s.order, r.ID())
	return nil
}

func (s *RentalStore) FindByID(_ context.Context, id string) (*rental.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return r, nil
}

func (s *RentalStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*rental.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*rental.Rental
	for _, id := range s.order {
		if r := s.byID[id]; r.UserID() == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
