package platform

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormy/internal/config/configs"
	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

const youtubeChannels = `{"items":[{
  "id":"UC123",
  "snippet":{"title":"Code Academy","description":"Programming tutorials every week","customUrl":"@codeacademy",
    "country":"GB","thumbnails":{"default":{"url":"d.png"},"high":{"url":"h.png"}}},
  "statistics":{"subscriberCount":"1000","viewCount":"50000","videoCount":"100"}
}]}`

func TestYouTubeSearch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "channel", r.URL.Query().Get("type"))
		assert.Equal(t, "coding", r.URL.Query().Get("q"))
		assert.Equal(t, "key", r.URL.Query().Get("key"))
		writeBody(w, "application/json", `{"items":[{"snippet":{"channelId":"UC123"}}]}`)
	})
	mux.HandleFunc("/channels", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "UC123", r.URL.Query().Get("id"))
		writeBody(w, "application/json", youtubeChannels)
	})
	srv := newServer(t, mux)

	yt := NewYouTube(configs.YouTube{APIKey: "key", BaseURL: srv.URL}, srv.Client(), testLogger())
	got := yt.Search(context.Background(), "coding", 5)

	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, "UC123", c.ID)
	assert.Equal(t, domain.PlatformYouTube, c.Platform)
	assert.Equal(t, "@codeacademy", c.Username)
	assert.Equal(t, "h.png", c.ProfileImage)
	assert.Equal(t, "https://youtube.com/channel/UC123", c.ProfileURL)
	assert.Equal(t, int64(1000), c.FollowerCount)
	assert.Equal(t, int64(500), c.AvgViews)
	assert.Equal(t, 50.0, c.EngagementRate)
	assert.Equal(t, "GB", c.Country)
	assert.Equal(t, "Tech", c.Niche)
	assert.True(t, c.Verified)
	assert.True(t, c.IsReal)
	assert.Nil(t, c.Email)
}

func TestYouTubeWithoutKeyMakesNoCalls(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits.Add(1) }))

	yt := NewYouTube(configs.YouTube{BaseURL: srv.URL}, srv.Client(), testLogger())
	assert.Empty(t, yt.Search(context.Background(), "coding", 5))
	assert.Zero(t, hits.Load())

	_, err := yt.LookupChannel(context.Background(), "UC1")
	assert.ErrorIs(t, err, port.ErrCreatorNotFound)
}

func TestYouTubeUpstreamFailureDegrades(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	yt := NewYouTube(configs.YouTube{APIKey: "key", BaseURL: srv.URL}, srv.Client(), testLogger())
	assert.Empty(t, yt.Search(context.Background(), "coding", 5))
}

func TestYouTubeLookupChannel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/channels", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "UC123" {
			writeBody(w, "application/json", youtubeChannels)
			return
		}
		writeBody(w, "application/json", `{"items":[]}`)
	})
	srv := newServer(t, mux)
	yt := NewYouTube(configs.YouTube{APIKey: "key", BaseURL: srv.URL}, srv.Client(), testLogger())

	c, err := yt.LookupChannel(context.Background(), "UC123")
	require.NoError(t, err)
	assert.Equal(t, "Code Academy", c.DisplayName)
	assert.Equal(t, "Programming tutorials every week", c.Bio)

	_, err = yt.LookupChannel(context.Background(), "UCmissing")
	assert.True(t, errors.Is(err, port.ErrCreatorNotFound))
}

func TestYouTubeTruncatesBio(t *testing.T) {
	ch := youtubeChannel{}
	ch.Snippet.Description = string(make([]rune, 250))
	c := ch.toCreator(youtubeBioLimit)
	assert.Len(t, []rune(c.Bio), youtubeBioLimit)

	empty := youtubeChannel{ID: "x"}.toCreator(youtubeBioLimit)
	assert.Equal(t, noDescription, empty.Bio)
	assert.Equal(t, "x", empty.Username)
	assert.Equal(t, domain.UnknownCountry, empty.Country)
}
