package port

import (
	"context"

	"stormy/internal/core/domain"
)

// SearchUseCase aggregates creator searches across platforms.
type SearchUseCase interface {
	// Search fans out to live adapters and falls back to the mock dataset
	// when none of them returns anything.
	Search(ctx context.Context, q domain.SearchQuery) (*SearchResult, error)
}

// CreatorUseCase resolves individual creators.
type CreatorUseCase interface {
	// GetCreator returns ErrCreatorNotFound when the reference cannot be
	// resolved.
	GetCreator(ctx context.Context, ref domain.CreatorRef) (*domain.Creator, error)
}

// CampaignUseCase defines campaign management operations.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// AddCreator adds a creator to a campaign. Adding the same creator
	// twice is a no-op. ErrCampaignNotFound and ErrCreatorNotFound report
	// unresolved ids.
	AddCreator(ctx context.Context, campaignID string, ref domain.CreatorRef) (*domain.Campaign, error)
	// GetStats returns aggregate figures over a campaign's creators.
	GetStats(ctx context.Context, campaignID string) (*CampaignStats, error)
}

// UserUseCase handles account registration.
type UserUseCase interface {
	// Register creates a user or returns ErrEmailExists.
	Register(ctx context.Context, req RegisterReq) (*domain.User, error)
}

// SearchResult is the aggregated search response. Total and Platforms are
// computed before Results is truncated.
type SearchResult struct {
	Results   []domain.Creator  `json:"results"`
	Total     int               `json:"total"`
	Source    string            `json:"source"`
	Platforms []domain.Platform `json:"platforms"`
}

type CreateCampaignReq struct {
	Name           string
	Description    string
	Budget         float64
	TargetCriteria domain.TargetCriteria
}

type RegisterReq struct {
	Email    string
	Password string
	FullName string
	Company  string
}

// CampaignStats summarises the creators attached to a campaign. Reach is
// the sum of follower counts; engagement is the unweighted mean.
type CampaignStats struct {
	CampaignID            string         `json:"campaignId"`
	CreatorCount          int            `json:"creatorCount"`
	TotalReach            int64          `json:"totalReach"`
	AverageEngagementRate float64        `json:"averageEngagementRate"`
	Budget                float64        `json:"budget"`
	BudgetPerCreator      float64        `json:"budgetPerCreator"`
	Platforms             map[string]int `json:"platforms"`
}
