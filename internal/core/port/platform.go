package port

import (
	"context"

	"stormy/internal/core/domain"
)

// PlatformAdapter fetches creators from one platform. Search never fails:
// network, parsing and credential problems degrade to an empty result.
type PlatformAdapter interface {
	Platform() domain.Platform
	Search(ctx context.Context, query string, maxResults int) []domain.Creator
}

// ChannelLookup resolves a single channel by its platform id.
type ChannelLookup interface {
	// LookupChannel returns ErrCreatorNotFound when the id is unknown.
	LookupChannel(ctx context.Context, id string) (*domain.Creator, error)
}

// CreatorCatalog is the generated dataset served when no live adapter
// returns results.
type CreatorCatalog interface {
	Get(id string) (domain.Creator, bool)
	// Match filters by platform and a case-insensitive substring of the
	// display name, bio or niche.
	Match(platformFilter, text string) []domain.Creator
}
