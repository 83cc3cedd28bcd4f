package memstore

import (
	"context"
	"sync"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"
)

// PropertyStore is the transient catalog. Records are immutable after
// seeding; list results keep insertion order, never relevance or price.
type PropertyStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*property.Property
}

func NewPropertyStore() *PropertyStore {
	return &PropertyStore{
		byID: make(map[string]*property.Property),
	}
}

func (s *PropertyStore) Add(p *property.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID()]; exists {
		return infra.WrapRepoErr("property id already in catalog", nil, infra.KindDuplicateKey)
	}
	s.byID[p.ID()] = p
	s.order = append(s.order, p.ID())
	return nil
}

func (s *PropertyStore) FindByID(_ context.Context, id string) (*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (s *PropertyStore) List(_ context.Context, filter property.Filter) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*property.Property
	for _, id := range s.order {
		if p := s.byID[id]; filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PropertyStore) ListFeatured(_ context.Context) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*property.Property
	for _, id := range s.order {
		if p := s.byID[id]; p.IsFeatured() {
			out = append(out, p)
		}
	}
	return out, nil
}
