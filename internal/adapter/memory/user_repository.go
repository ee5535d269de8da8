package memory

import (
	"context"
	"sync"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return port.ErrEmailExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
