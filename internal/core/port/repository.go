package port

import (
	"context"

	"stormy/internal/core/domain"
)

// CampaignRepository stores campaigns. It is an outbound port;
// implementations must be safe for concurrent use and return copies so
// stored state cannot be mutated by callers.
type CampaignRepository interface {
	// Create stores a new campaign.
	Create(ctx context.Context, c domain.Campaign) error
	// List returns all campaigns in creation order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns a campaign by id or ErrCampaignNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// AddCreator appends a creator snapshot unless a creator with the
	// same id is already a member, and returns the resulting campaign.
	AddCreator(ctx context.Context, campaignID string, cc domain.CampaignCreator) (*domain.Campaign, error)
}

// UserRepository stores registered users keyed by unique email.
type UserRepository interface {
	// Create stores the user or returns ErrEmailExists.
	Create(ctx context.Context, u domain.User) error
	// FindByEmail returns the user with the given email, or (nil, nil)
	// when there is none.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CreatorCache remembers creators returned by live searches so they can be
// resolved by id later.
type CreatorCache interface {
	// Get returns the cached creator or ErrCreatorNotFound. Entries are
	// keyed by platform and id; with an empty ref.Platform the platforms
	// are tried in domain.Platforms order.
	Get(ctx context.Context, ref domain.CreatorRef) (*domain.Creator, error)
	// Put stores or replaces the given creators.
	Put(ctx context.Context, creators []domain.Creator) error
}
