// Package memory provides in-process repositories used when no database is
// configured. State is lost on restart.
package memory

import (
	"context"
	"sync"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

type CampaignRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Campaign
	order []string
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{byID: make(map[string]*domain.Campaign)}
}

func (r *CampaignRepository) Create(_ context.Context, c domain.Campaign) error {
	stored := c.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = &stored
	return nil
}

func (r *CampaignRepository) List(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *CampaignRepository) Get(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	out := c.Clone()
	return &out, nil
}

// AddCreator appends under the write lock so concurrent adds of the same
// creator produce a single membership.
func (r *CampaignRepository) AddCreator(_ context.Context, campaignID string, cc domain.CampaignCreator) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[campaignID]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	if !c.HasCreator(cc.ID) {
		c.Creators = append(c.Creators, cc)
		// Detach the stored email pointer from the caller's copy.
		*c = c.Clone()
	}
	out := c.Clone()
	return &out, nil
}
