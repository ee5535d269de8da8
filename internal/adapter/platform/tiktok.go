package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stormy/internal/config/configs"
	"stormy/internal/core/domain"
)

const noBio = "No bio available"

// TikTok queries the web app's user search endpoint.
type TikTok struct {
	cfg    configs.TikTok
	client *http.Client
	logger *slog.Logger
}

// NewTikTok returns a TikTok adapter.
func NewTikTok(cfg configs.TikTok, client *http.Client, logger *slog.Logger) *TikTok {
	return &TikTok{cfg: cfg, client: client, logger: logger}
}

func (t *TikTok) Platform() domain.Platform { return domain.PlatformTikTok }

func (t *TikTok) Search(ctx context.Context, query string, maxResults int) []domain.Creator {
	endpoint := t.cfg.BaseURL + "/api/search/user/full/?keyword=" + url.QueryEscape(query)
	header := http.Header{"Referer": []string{t.cfg.BaseURL + "/"}}

	var resp struct {
		UserList []struct {
			UserInfo tiktokUser `json:"user_info"`
		} `json:"user_list"`
	}
	if err := fetchJSON(ctx, t.client, http.MethodGet, endpoint, nil, header, searchTimeout, &resp); err != nil {
		return degrade(t.logger, domain.PlatformTikTok, fmt.Errorf("tiktok search: %w", err))
	}

	n := min(len(resp.UserList), capResults(maxResults))
	out := make([]domain.Creator, 0, n)
	for _, item := range resp.UserList[:n] {
		out = append(out, item.UserInfo.toCreator())
	}
	t.logger.Debug("tiktok search done", slog.String("query", query), slog.Int("count", len(out)))
	return out
}

type tiktokUser struct {
	UID          json.Number `json:"uid"`
	UniqueID     string      `json:"unique_id"`
	Nickname     string      `json:"nickname"`
	Signature    string      `json:"signature"`
	AvatarLarger string      `json:"avatar_larger"`
	AvatarMedium string      `json:"avatar_medium"`
	Region       string      `json:"region"`
	Verified     bool        `json:"verified"`
	Stats        struct {
		FollowerCount int64 `json:"follower_count"`
		VideoCount    int64 `json:"video_count"`
		HeartCount    int64 `json:"heart_count"`
	} `json:"stats"`
}

// toCreator maps a user. TikTok exposes likes rather than views, so likes
// stand in for views throughout.
func (u tiktokUser) toCreator() domain.Creator {
	followers := u.Stats.FollowerCount
	avgLikes := u.Stats.HeartCount / max(u.Stats.VideoCount, 1)
	return domain.Creator{
		ID:             u.UID.String(),
		Platform:       domain.PlatformTikTok,
		Username:       u.UniqueID,
		DisplayName:    u.Nickname,
		Bio:            firstNonEmpty(u.Signature, noBio),
		ProfileImage:   firstNonEmpty(u.AvatarLarger, u.AvatarMedium),
		ProfileURL:     "https://tiktok.com/@" + u.UniqueID,
		FollowerCount:  followers,
		TotalPosts:     u.Stats.VideoCount,
		TotalViews:     u.Stats.HeartCount,
		EngagementRate: domain.EngagementRate(avgLikes, followers),
		AvgViews:       avgLikes,
		AvgLikes:       avgLikes,
		Country:        firstNonEmpty(u.Region, domain.UnknownCountry),
		Niche:          domain.ClassifyNiche(u.Nickname, u.Signature),
		Verified:       u.Verified,
		IsReal:         true,
	}
}
