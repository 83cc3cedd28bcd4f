package memstore

import (
	"context"
	"sync"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"

	"github.com/google/uuid"
)

// BookingStore keeps booking requests in creation order. All mutations go
// through Update, which runs its callback under the store's write lock:
// that is the per-booking mutual exclusion the lifecycle needs so that two
// racing converters cannot both observe status=confirmed.
type BookingStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*booking.BookingRequest
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		byID: make(map[string]*booking.BookingRequest),
	}
}

func (s *BookingStore) Create(_ context.Context, b *booking.BookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[b.ID()]; exists {
		return infra.WrapRepoErr("booking id already exists", nil, infra.KindDuplicateKey)
	}
	s.byID[b.ID()] = b.Clone()
	s.order = append(s.order, b.ID())
	return nil
}

func (s *BookingStore) FindByID(_ context.Context, id string) (*booking.BookingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b.Clone(), nil
}

func (s *BookingStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*booking.BookingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*booking.BookingRequest
	for _, id := range s.order {
		if b := s.byID[id]; b.UserID() == userID {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

// Update applies fn to the stored record under the write lock and returns a
// snapshot of the result. When fn fails the record is left untouched.
func (s *BookingStore) Update(_ context.Context, id string, fn func(*booking.BookingRequest) error) (*booking.BookingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	scratch := b.Clone()
	if err := fn(scratch); err != nil {
		return nil, err
	}
	s.byID[id] = scratch
	return scratch.Clone(), nil
}
