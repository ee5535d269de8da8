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

const profileUnavailable = "Profile details unavailable"

// Instagram uses the public top-search endpoint and then fetches each
// profile individually. Engagement cannot be derived without post data and
// is always reported as 0.
type Instagram struct {
	cfg    configs.Instagram
	client *http.Client
	logger *slog.Logger
}

// NewInstagram returns an Instagram adapter.
func NewInstagram(cfg configs.Instagram, client *http.Client, logger *slog.Logger) *Instagram {
	return &Instagram{cfg: cfg, client: client, logger: logger}
}

func (i *Instagram) Platform() domain.Platform { return domain.PlatformInstagram }

func (i *Instagram) Search(ctx context.Context, query string, maxResults int) []domain.Creator {
	endpoint := i.cfg.BaseURL + "/web/search/topsearch/?query=" + url.QueryEscape(query)
	header := http.Header{"X-Requested-With": []string{"XMLHttpRequest"}}

	var resp struct {
		Users []struct {
			User instagramUser `json:"user"`
		} `json:"users"`
	}
	if err := fetchJSON(ctx, i.client, http.MethodGet, endpoint, nil, header, searchTimeout, &resp); err != nil {
		return degrade(i.logger, domain.PlatformInstagram, fmt.Errorf("instagram search: %w", err))
	}

	n := min(len(resp.Users), capResults(maxResults))
	out := make([]domain.Creator, 0, n)
	for _, item := range resp.Users[:n] {
		u := item.User
		profile, err := i.profile(ctx, u.Username)
		if err != nil {
			i.logger.Debug("instagram profile unavailable", slog.String("username", u.Username), slog.Any("error", err))
			out = append(out, u.basicCreator())
			continue
		}
		out = append(out, u.toCreator(profile))
	}
	i.logger.Debug("instagram search done", slog.String("query", query), slog.Int("count", len(out)))
	return out
}

func (i *Instagram) profile(ctx context.Context, username string) (*instagramProfile, error) {
	endpoint := i.cfg.BaseURL + "/api/v1/users/web_profile_info/?username=" + url.QueryEscape(username)
	header := http.Header{"X-IG-App-ID": []string{i.cfg.AppID}}

	var resp struct {
		Data struct {
			User *instagramProfile `json:"user"`
		} `json:"data"`
	}
	if err := fetchJSON(ctx, i.client, http.MethodGet, endpoint, nil, header, detailTimeout, &resp); err != nil {
		return nil, err
	}
	if resp.Data.User == nil {
		return nil, fmt.Errorf("instagram profile %q: empty payload", username)
	}
	return resp.Data.User, nil
}

type instagramUser struct {
	PK            json.Number `json:"pk"`
	Username      string      `json:"username"`
	FullName      string      `json:"full_name"`
	ProfilePicURL string      `json:"profile_pic_url"`
	IsVerified    bool        `json:"is_verified"`
}

type instagramProfile struct {
	Biography      string `json:"biography"`
	EdgeFollowedBy struct {
		Count int64 `json:"count"`
	} `json:"edge_followed_by"`
	EdgeOwnerToTimelineMedia struct {
		Count int64 `json:"count"`
	} `json:"edge_owner_to_timeline_media"`
}

func (u instagramUser) basicCreator() domain.Creator {
	return domain.Creator{
		ID:           u.PK.String(),
		Platform:     domain.PlatformInstagram,
		Username:     u.Username,
		DisplayName:  firstNonEmpty(u.FullName, u.Username),
		Bio:          profileUnavailable,
		ProfileImage: u.ProfilePicURL,
		ProfileURL:   "https://instagram.com/" + u.Username,
		Country:      domain.UnknownCountry,
		Niche:        domain.GeneralNiche,
		Verified:     u.IsVerified,
		IsReal:       true,
	}
}

func (u instagramUser) toCreator(p *instagramProfile) domain.Creator {
	c := u.basicCreator()
	c.Bio = firstNonEmpty(p.Biography, noBio)
	c.FollowerCount = p.EdgeFollowedBy.Count
	c.TotalPosts = p.EdgeOwnerToTimelineMedia.Count
	c.Niche = domain.ClassifyNiche(u.FullName, p.Biography)
	return c
}
