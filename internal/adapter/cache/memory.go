// Package cache holds CreatorCache implementations: an in-process map for
// single instance deployments and Redis for shared state.
package cache

import (
	"context"
	"sync"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

// Memory is a process local creator cache. Entries never expire.
type Memory struct {
	mu       sync.RWMutex
	creators map[key]domain.Creator
}

type key struct {
	platform domain.Platform
	id       string
}

func NewMemory() *Memory {
	return &Memory{creators: make(map[key]domain.Creator)}
}

func (m *Memory) Get(_ context.Context, ref domain.CreatorRef) (*domain.Creator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range candidates(ref) {
		if c, ok := m.creators[key{platform: p, id: ref.ID}]; ok {
			return &c, nil
		}
	}
	return nil, port.ErrCreatorNotFound
}

func (m *Memory) Put(_ context.Context, creators []domain.Creator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range creators {
		if c.ID == "" {
			continue
		}
		m.creators[key{platform: c.Platform, id: c.ID}] = c
	}
	return nil
}

// candidates lists the platforms to try for ref, most specific first.
func candidates(ref domain.CreatorRef) []domain.Platform {
	if ref.Platform != "" {
		return []domain.Platform{ref.Platform}
	}
	return domain.Platforms
}
