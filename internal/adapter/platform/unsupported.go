package platform

import (
	"context"
	"log/slog"

	"stormy/internal/core/domain"
)

// Unsupported is a placeholder for platforms that cannot be searched
// without partner credentials. It always returns an empty result.
type Unsupported struct {
	platform domain.Platform
	reason   string
	logger   *slog.Logger
}

// NewTwitter returns the Twitter/X placeholder.
func NewTwitter(logger *slog.Logger) *Unsupported {
	return &Unsupported{platform: domain.PlatformTwitter, reason: "requires API v2 credentials", logger: logger}
}

// NewLinkedIn returns the LinkedIn placeholder.
func NewLinkedIn(logger *slog.Logger) *Unsupported {
	return &Unsupported{platform: domain.PlatformLinkedIn, reason: "requires OAuth partner access", logger: logger}
}

func (u *Unsupported) Platform() domain.Platform { return u.platform }

func (u *Unsupported) Search(_ context.Context, query string, _ int) []domain.Creator {
	u.logger.Debug("platform search not implemented",
		slog.String("platform", string(u.platform)),
		slog.String("reason", u.reason),
		slog.String("query", query))
	return nil
}
