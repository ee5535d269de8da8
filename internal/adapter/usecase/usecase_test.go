package usecase

import (
	"io"
	"log/slog"

	"stormy/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func creator(id string, p domain.Platform, followers int64) domain.Creator {
	return domain.Creator{ID: id, Platform: p, DisplayName: id, FollowerCount: followers, Country: "US", IsReal: true}
}
