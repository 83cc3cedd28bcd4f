package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/user"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"

	"github.com/google/uuid"
)

// UserStore keeps accounts keyed by id with a case-insensitive email index.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func emailKey(e user.Email) string {
	return strings.ToLower(e.Value())
}

func (s *UserStore) Create(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(u.Email())
	if _, exists := s.byEmail[key]; exists {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	s.byID[u.ID()] = u
	s.byEmail[key] = u.ID()
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[emailKey(email)]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return s.byID[id], nil
}
