package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

// CampaignUseCase manages campaigns and their creator memberships.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	creators port.CreatorUseCase
	now      func() time.Time
}

// NewCampaignUseCase creates the use case. creators resolves ids passed to
// AddCreator.
func NewCampaignUseCase(repo port.CampaignRepository, creators port.CreatorUseCase) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, creators: creators, now: time.Now}
}

// CreateCampaign stores a new draft campaign with no creators.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	c := domain.Campaign{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		Budget:         req.Budget,
		TargetCriteria: targetCriteria(req.TargetCriteria),
		Status:         domain.CampaignStatusDraft,
		CreatedAt:      u.now().UTC(),
		Creators:       []domain.CampaignCreator{},
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &c, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// AddCreator checks the campaign before resolving the creator so an unknown
// campaign is reported even when the creator id is also unknown.
func (u *CampaignUseCase) AddCreator(ctx context.Context, campaignID string, ref domain.CreatorRef) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.HasCreator(ref.ID) {
		return c, nil
	}

	creator, err := u.creators.GetCreator(ctx, ref)
	if err != nil {
		return nil, err
	}
	return u.repo.AddCreator(ctx, campaignID, domain.CampaignCreator{
		Creator: *creator,
		Status:  domain.MembershipPending,
		AddedAt: u.now().UTC(),
	})
}

// GetStats aggregates reach, engagement and platform mix.
func (u *CampaignUseCase) GetStats(ctx context.Context, campaignID string) (*port.CampaignStats, error) {
	c, err := u.repo.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	stats := &port.CampaignStats{
		CampaignID:   c.ID,
		CreatorCount: len(c.Creators),
		Budget:       c.Budget,
		Platforms:    make(map[string]int),
	}
	var engagement float64
	for _, cc := range c.Creators {
		stats.TotalReach += cc.FollowerCount
		engagement += cc.EngagementRate
		stats.Platforms[string(cc.Platform)]++
	}
	if n := len(c.Creators); n > 0 {
		stats.AverageEngagementRate = domain.Round2(engagement / float64(n))
		stats.BudgetPerCreator = domain.Round2(c.Budget / float64(n))
	}
	return stats, nil
}

// targetCriteria keeps the client's JSON as sent; a missing or null value
// becomes an empty object.
func targetCriteria(raw domain.TargetCriteria) domain.TargetCriteria {
	if len(raw) == 0 || string(raw) == "null" {
		return domain.TargetCriteria(domain.EmptyTargetCriteria)
	}
	return slices.Clone(raw)
}
