package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

// youtubeChannelPrefix marks ids that can be looked up live.
const youtubeChannelPrefix = "UC"

// CreatorUseCase resolves a creator id against the generated catalog, the
// cache of live search results and, for YouTube channel ids, the YouTube
// API.
type CreatorUseCase struct {
	catalog port.CreatorCatalog
	cache   port.CreatorCache
	lookup  port.ChannelLookup
	logger  *slog.Logger
}

// NewCreatorUseCase creates the resolver. lookup may be nil.
func NewCreatorUseCase(catalog port.CreatorCatalog, cache port.CreatorCache, lookup port.ChannelLookup, logger *slog.Logger) *CreatorUseCase {
	return &CreatorUseCase{catalog: catalog, cache: cache, lookup: lookup, logger: logger}
}

// GetCreator resolves ref. A platform in ref narrows every step, so ids
// shared by two platforms resolve to the requested one.
func (u *CreatorUseCase) GetCreator(ctx context.Context, ref domain.CreatorRef) (*domain.Creator, error) {
	if c, ok := u.catalog.Get(ref.ID); ok && ref.Accepts(c.Platform) {
		return &c, nil
	}

	c, err := u.cache.Get(ctx, ref)
	switch {
	case err == nil:
		return c, nil
	case !errors.Is(err, port.ErrCreatorNotFound):
		u.logger.Warn("creator cache read", slog.String("id", ref.ID), slog.Any("error", err))
	}

	if u.lookup == nil || !ref.Accepts(domain.PlatformYouTube) || !strings.HasPrefix(ref.ID, youtubeChannelPrefix) {
		return nil, port.ErrCreatorNotFound
	}
	c, err = u.lookup.LookupChannel(ctx, ref.ID)
	if err != nil {
		if !errors.Is(err, port.ErrCreatorNotFound) {
			u.logger.Warn("youtube channel lookup", slog.String("id", ref.ID), slog.Any("error", err))
		}
		return nil, port.ErrCreatorNotFound
	}
	if err = u.cache.Put(ctx, []domain.Creator{*c}); err != nil {
		u.logger.Warn("cache looked up creator", slog.String("id", ref.ID), slog.Any("error", err))
	}
	return c, nil
}
