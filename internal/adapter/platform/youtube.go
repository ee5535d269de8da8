package platform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"stormy/internal/config/configs"
	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

const (
	youtubeBioLimit    = 200
	noDescription      = "No description available"
	youtubeChannelURL  = "https://youtube.com/channel/"
	youtubeChannelPart = "snippet,statistics,brandingSettings"
)

// YouTube searches channels through the Data API v3. It requires an API
// key; without one every search is empty.
type YouTube struct {
	cfg    configs.YouTube
	client *http.Client
	logger *slog.Logger
}

// NewYouTube returns a YouTube adapter.
func NewYouTube(cfg configs.YouTube, client *http.Client, logger *slog.Logger) *YouTube {
	return &YouTube{cfg: cfg, client: client, logger: logger}
}

func (y *YouTube) Platform() domain.Platform { return domain.PlatformYouTube }

// Search finds channels matching query and enriches them with statistics.
func (y *YouTube) Search(ctx context.Context, query string, maxResults int) []domain.Creator {
	if y.cfg.APIKey == "" {
		y.logger.Debug("youtube api key not configured")
		return nil
	}
	creators, err := y.search(ctx, query, capResults(maxResults))
	if err != nil {
		return degrade(y.logger, domain.PlatformYouTube, err)
	}
	y.logger.Debug("youtube search done", slog.String("query", query), slog.Int("count", len(creators)))
	return creators
}

// LookupChannel fetches a single channel by id.
func (y *YouTube) LookupChannel(ctx context.Context, id string) (*domain.Creator, error) {
	if y.cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube api key not configured: %w", port.ErrCreatorNotFound)
	}
	channels, err := y.channels(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, port.ErrCreatorNotFound
	}
	c := channels[0].toCreator(0)
	return &c, nil
}

func (y *YouTube) search(ctx context.Context, query string, n int) ([]domain.Creator, error) {
	v := url.Values{}
	v.Set("part", "snippet")
	v.Set("type", "channel")
	v.Set("q", query)
	v.Set("maxResults", strconv.Itoa(n))
	v.Set("key", y.cfg.APIKey)

	var sr struct {
		Items []struct {
			Snippet struct {
				ChannelID string `json:"channelId"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := fetchJSON(ctx, y.client, http.MethodGet, y.cfg.BaseURL+"/search?"+v.Encode(), nil, nil, searchTimeout, &sr); err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	ids := make([]string, 0, len(sr.Items))
	for _, it := range sr.Items {
		if it.Snippet.ChannelID != "" {
			ids = append(ids, it.Snippet.ChannelID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	channels, err := y.channels(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Creator, 0, len(channels))
	for _, ch := range channels {
		out = append(out, ch.toCreator(youtubeBioLimit))
	}
	return out, nil
}

func (y *YouTube) channels(ctx context.Context, ids []string) ([]youtubeChannel, error) {
	v := url.Values{}
	v.Set("part", youtubeChannelPart)
	v.Set("id", strings.Join(ids, ","))
	v.Set("key", y.cfg.APIKey)

	var resp struct {
		Items []youtubeChannel `json:"items"`
	}
	if err := fetchJSON(ctx, y.client, http.MethodGet, y.cfg.BaseURL+"/channels?"+v.Encode(), nil, nil, searchTimeout, &resp); err != nil {
		return nil, fmt.Errorf("youtube channels: %w", err)
	}
	return resp.Items, nil
}

type youtubeThumb struct {
	URL string `json:"url"`
}

type youtubeChannel struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CustomURL   string `json:"customUrl"`
		Country     string `json:"country"`
		Thumbnails  struct {
			Default youtubeThumb `json:"default"`
			High    youtubeThumb `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	// The API encodes counters as decimal strings.
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
		ViewCount       string `json:"viewCount"`
		VideoCount      string `json:"videoCount"`
	} `json:"statistics"`
}

// toCreator maps a channel; bioLimit <= 0 keeps the full description.
func (ch youtubeChannel) toCreator(bioLimit int) domain.Creator {
	subscribers := parseCount(ch.Statistics.SubscriberCount)
	views := parseCount(ch.Statistics.ViewCount)
	videos := parseCount(ch.Statistics.VideoCount)
	avgViews := views / max(videos, 1)

	bio := ch.Snippet.Description
	if bioLimit > 0 {
		bio = truncateRunes(bio, bioLimit)
	}
	return domain.Creator{
		ID:             ch.ID,
		Platform:       domain.PlatformYouTube,
		Username:       firstNonEmpty(ch.Snippet.CustomURL, ch.ID),
		DisplayName:    ch.Snippet.Title,
		Bio:            firstNonEmpty(bio, noDescription),
		ProfileImage:   firstNonEmpty(ch.Snippet.Thumbnails.High.URL, ch.Snippet.Thumbnails.Default.URL),
		ProfileURL:     youtubeChannelURL + ch.ID,
		FollowerCount:  subscribers,
		TotalPosts:     videos,
		TotalViews:     views,
		EngagementRate: domain.EngagementRate(avgViews, subscribers),
		AvgViews:       avgViews,
		Country:        firstNonEmpty(ch.Snippet.Country, domain.UnknownCountry),
		Niche:          domain.ClassifyNiche(ch.Snippet.Title, ch.Snippet.Description),
		Verified:       true,
		IsReal:         true,
	}
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
