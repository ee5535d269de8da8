package platform

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormy/internal/config/configs"
	"stormy/internal/core/domain"
)

func TestTikTokSearch(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/user/full/", r.URL.Path)
		assert.Equal(t, "chef life", r.URL.Query().Get("keyword"))
		assert.NotEmpty(t, r.Header.Get("Referer"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		writeBody(w, "application/json", `{"user_list":[
		  {"user_info":{"uid":"111","unique_id":"chefjo","nickname":"Chef Jo","signature":"daily cooking",
		    "avatar_larger":"big.jpg","region":"US","verified":true,
		    "stats":{"follower_count":2000,"video_count":10,"heart_count":4000}}},
		  {"user_info":{"uid":"222","unique_id":"quiet","nickname":"Quiet","stats":{}}}
		]}`)
	}))

	tt := NewTikTok(configs.TikTok{BaseURL: srv.URL}, srv.Client(), testLogger())
	got := tt.Search(context.Background(), "chef life", 20)

	require.Len(t, got, 2)
	first := got[0]
	assert.Equal(t, "111", first.ID)
	assert.Equal(t, domain.PlatformTikTok, first.Platform)
	assert.Equal(t, "https://tiktok.com/@chefjo", first.ProfileURL)
	assert.Equal(t, int64(400), first.AvgLikes)
	assert.Equal(t, int64(4000), first.TotalViews)
	assert.Equal(t, 20.0, first.EngagementRate)
	assert.Equal(t, "Food", first.Niche)
	assert.True(t, first.Verified)

	second := got[1]
	assert.Equal(t, noBio, second.Bio)
	assert.Equal(t, domain.UnknownCountry, second.Country)
	assert.Zero(t, second.EngagementRate)
}

func TestTikTokCapsResults(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, "application/json", `{"user_list":[{"user_info":{"uid":"1"}},{"user_info":{"uid":"2"}},{"user_info":{"uid":"3"}}]}`)
	}))
	tt := NewTikTok(configs.TikTok{BaseURL: srv.URL}, srv.Client(), testLogger())
	assert.Len(t, tt.Search(context.Background(), "q", 2), 2)
}

func TestTikTokMalformedBodyDegrades(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, "text/html", "<html>captcha</html>")
	}))
	tt := NewTikTok(configs.TikTok{BaseURL: srv.URL}, srv.Client(), testLogger())
	assert.Empty(t, tt.Search(context.Background(), "q", 2))
}
