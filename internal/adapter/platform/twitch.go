package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stormy/internal/config/configs"
	"stormy/internal/core/domain"
)

const twitchRecentVideos = 10

// Twitch searches channels through the Helix API using an app access token.
// Each result is enriched with one request per metric, and channels are
// processed one at a time with cfg.ChannelDelay between them to stay under
// the rate limit.
type Twitch struct {
	cfg    configs.Twitch
	client *http.Client
	tokens *TokenCache
	logger *slog.Logger
}

// NewTwitch returns a Twitch adapter using tokens for authentication.
func NewTwitch(cfg configs.Twitch, client *http.Client, tokens *TokenCache, logger *slog.Logger) *Twitch {
	return &Twitch{cfg: cfg, client: client, tokens: tokens, logger: logger}
}

func (t *Twitch) Platform() domain.Platform { return domain.PlatformTwitch }

func (t *Twitch) Search(ctx context.Context, query string, maxResults int) []domain.Creator {
	if t.cfg.ClientID == "" || t.cfg.ClientSecret == "" {
		t.logger.Debug("twitch credentials not configured")
		return nil
	}
	token, err := t.tokens.Token(ctx)
	if err != nil {
		return degrade(t.logger, domain.PlatformTwitch, err)
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("first", strconv.Itoa(capResults(maxResults)))
	var resp struct {
		Data []twitchChannel `json:"data"`
	}
	if err = t.helix(ctx, token, "/search/channels", q, searchTimeout, &resp); err != nil {
		return degrade(t.logger, domain.PlatformTwitch, fmt.Errorf("twitch search: %w", err))
	}

	out := make([]domain.Creator, 0, len(resp.Data))
	for i, ch := range resp.Data {
		if i > 0 && t.cfg.ChannelDelay > 0 {
			select {
			case <-ctx.Done():
				t.logger.Debug("twitch search interrupted", slog.Any("error", ctx.Err()))
				return out
			case <-time.After(t.cfg.ChannelDelay):
			}
		}
		out = append(out, t.detail(ctx, token, ch))
	}
	t.logger.Debug("twitch search done", slog.String("query", query), slog.Int("count", len(out)))
	return out
}

// detail fills in follower, profile and video metrics. Each lookup is best
// effort: a failed one leaves its fields at their zero value.
func (t *Twitch) detail(ctx context.Context, token string, ch twitchChannel) domain.Creator {
	c := domain.Creator{
		ID:           ch.ID,
		Platform:     domain.PlatformTwitch,
		Username:     ch.BroadcasterLogin,
		DisplayName:  ch.DisplayName,
		Bio:          firstNonEmpty(ch.Title, noDescription),
		ProfileImage: ch.ThumbnailURL,
		ProfileURL:   "https://twitch.tv/" + ch.BroadcasterLogin,
		Country:      domain.UnknownCountry,
		Niche:        firstNonEmpty(ch.GameName, "Gaming"),
		IsReal:       true,
	}
	logFail := func(metric string, err error) {
		t.logger.Debug("twitch detail lookup failed",
			slog.String("channel", ch.ID), slog.String("metric", metric), slog.Any("error", err))
	}

	var followers struct {
		Total int64 `json:"total"`
	}
	if err := t.helix(ctx, token, "/channels/followers", url.Values{"broadcaster_id": {ch.ID}}, detailTimeout, &followers); err != nil {
		logFail("followers", err)
	}
	c.FollowerCount = followers.Total

	var info struct {
		Data []struct {
			GameName string `json:"game_name"`
			Title    string `json:"title"`
		} `json:"data"`
	}
	if err := t.helix(ctx, token, "/channels", url.Values{"broadcaster_id": {ch.ID}}, detailTimeout, &info); err != nil {
		logFail("channel", err)
	} else if len(info.Data) > 0 {
		c.Niche = firstNonEmpty(info.Data[0].GameName, c.Niche)
		c.Bio = firstNonEmpty(info.Data[0].Title, c.Bio)
	}

	var users struct {
		Data []struct {
			Description     string `json:"description"`
			ProfileImageURL string `json:"profile_image_url"`
			BroadcasterType string `json:"broadcaster_type"`
		} `json:"data"`
	}
	if err := t.helix(ctx, token, "/users", url.Values{"id": {ch.ID}}, detailTimeout, &users); err != nil {
		logFail("user", err)
	} else if len(users.Data) > 0 {
		u := users.Data[0]
		c.Bio = firstNonEmpty(u.Description, c.Bio)
		c.ProfileImage = firstNonEmpty(u.ProfileImageURL, c.ProfileImage)
		c.Verified = u.BroadcasterType == "partner"
	}

	var videos struct {
		Data []struct {
			ViewCount int64 `json:"view_count"`
		} `json:"data"`
	}
	vq := url.Values{"user_id": {ch.ID}, "first": {strconv.Itoa(twitchRecentVideos)}}
	if err := t.helix(ctx, token, "/videos", vq, detailTimeout, &videos); err != nil {
		logFail("videos", err)
	} else if len(videos.Data) > 0 {
		var total int64
		for _, v := range videos.Data {
			total += v.ViewCount
		}
		c.TotalPosts = int64(len(videos.Data))
		c.TotalViews = total
		c.AvgViews = total / int64(len(videos.Data))
	}
	c.EngagementRate = domain.EngagementRate(c.AvgViews, c.FollowerCount)
	return c
}

// helix issues an authenticated GET. A 401 drops the cached token so the
// next search mints a new one; the failed call itself is not retried.
func (t *Twitch) helix(ctx context.Context, token, path string, q url.Values, timeout time.Duration, out any) error {
	header := http.Header{
		"Client-Id":     []string{t.cfg.ClientID},
		"Authorization": []string{"Bearer " + token},
	}
	err := fetchJSON(ctx, t.client, http.MethodGet, t.cfg.BaseURL+path+"?"+q.Encode(), nil, header, timeout, out)
	var se *statusError
	if errors.As(err, &se) && se.code == http.StatusUnauthorized {
		t.tokens.Invalidate()
	}
	return err
}

type twitchChannel struct {
	ID               string `json:"id"`
	BroadcasterLogin string `json:"broadcaster_login"`
	DisplayName      string `json:"display_name"`
	Title            string `json:"title"`
	ThumbnailURL     string `json:"thumbnail_url"`
	GameName         string `json:"game_name"`
}
