package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormy/internal/core/domain"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestGenerate(t *testing.T) {
	creators := Generate(seeded(), DefaultSize)
	require.Len(t, creators, DefaultSize)

	for i, c := range creators {
		assert.Equal(t, fmt.Sprintf("creator-%d", i+1), c.ID)
		assert.Contains(t, platforms, c.Platform)
		assert.Contains(t, niches, c.Niche)
		assert.Contains(t, countries, c.Country)
		assert.GreaterOrEqual(t, c.FollowerCount, int64(10_000))
		assert.Less(t, c.FollowerCount, int64(1_010_000))
		assert.GreaterOrEqual(t, c.EngagementRate, 1.0)
		assert.LessOrEqual(t, c.EngagementRate, 11.0)
		assert.GreaterOrEqual(t, c.AvgViews, c.FollowerCount/20-1)
		assert.LessOrEqual(t, c.AvgViews, c.FollowerCount*15/100)
		require.NotNil(t, c.Email)
		assert.Equal(t, strings.ToLower(c.Niche)+fmt.Sprintf("creator%d@example.com", i+1), *c.Email)
		assert.Equal(t, fmt.Sprintf("%s Creator %d", c.Niche, i+1), c.DisplayName)
		assert.False(t, c.IsReal)
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	assert.Equal(t, Generate(seeded(), 10), Generate(seeded(), 10))
}

func TestDataset(t *testing.T) {
	email := "x@example.com"
	ds := NewDataset([]domain.Creator{
		{ID: "creator-1", Platform: domain.PlatformYouTube, DisplayName: "Tech Creator 1", Niche: "Tech", Bio: "Tech content creator on YouTube.", Email: &email},
		{ID: "creator-2", Platform: domain.PlatformTikTok, DisplayName: "Food Creator 2", Niche: "Food", Bio: "Food content creator on TikTok."},
		{ID: "creator-3", Platform: domain.PlatformTwitch, DisplayName: "Gaming Creator 3", Niche: "Gaming", Bio: "Gaming content creator on Twitch."},
	})
	assert.Equal(t, 3, ds.Len())

	c, ok := ds.Get("creator-2")
	require.True(t, ok)
	assert.Equal(t, "Food Creator 2", c.DisplayName)
	_, ok = ds.Get("creator-9")
	assert.False(t, ok)

	ids := func(cs []domain.Creator) []string {
		var out []string
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}
	assert.Equal(t, []string{"creator-1", "creator-2", "creator-3"}, ids(ds.Match("all", "")))
	assert.Equal(t, []string{"creator-1"}, ids(ds.Match("", "TECH")))
	assert.Equal(t, []string{"creator-2"}, ids(ds.Match("tiktok", "")))
	assert.Equal(t, []string{"creator-3"}, ids(ds.Match("", "on twitch")))
	assert.Empty(t, ds.Match("youtube", "food"))
}
