package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stormy/internal/adapter/mockdata"
	"stormy/internal/config/configs"
	"stormy/internal/core/domain"
	"stormy/internal/core/port"
	"stormy/internal/core/port/mocks"
)

var searchCfg = configs.Search{MaxResultsPerPlatform: 20, ResultLimit: 20}

func adapter(t *testing.T, p domain.Platform, results []domain.Creator) *mocks.MockPlatformAdapter {
	a := mocks.NewMockPlatformAdapter(t)
	a.EXPECT().Platform().Return(p).Maybe()
	a.EXPECT().Search(mock.Anything, mock.Anything, 20).Return(results).Maybe()
	return a
}

func catalog() *mockdata.Dataset {
	email := "x@example.com"
	return mockdata.NewDataset([]domain.Creator{
		{ID: "creator-1", Platform: domain.PlatformYouTube, DisplayName: "Tech Creator 1", Bio: "Tech content creator on YouTube.", Niche: "Tech", FollowerCount: 500, Country: "US", Email: &email},
		{ID: "creator-2", Platform: domain.PlatformTikTok, DisplayName: "Food Creator 2", Bio: "Food content creator on TikTok.", Niche: "Food", FollowerCount: 900, Country: "UK"},
		{ID: "creator-3", Platform: domain.PlatformYouTube, DisplayName: "Travel Creator 3", Bio: "Travel content creator on YouTube.", Niche: "Travel", FollowerCount: 100, Country: "US"},
	})
}

func TestSearchLiveResults(t *testing.T) {
	yt := adapter(t, domain.PlatformYouTube, []domain.Creator{creator("yt1", domain.PlatformYouTube, 100), creator("yt2", domain.PlatformYouTube, 300)})
	tt := adapter(t, domain.PlatformTikTok, []domain.Creator{creator("tt1", domain.PlatformTikTok, 200)})
	empty := adapter(t, domain.PlatformTwitter, nil)

	cache := mocks.NewMockCreatorCache(t)
	cache.EXPECT().Put(mock.Anything, mock.MatchedBy(func(cs []domain.Creator) bool { return len(cs) == 3 })).Return(nil)

	uc := NewSearchUseCase([]port.PlatformAdapter{yt, tt, empty}, catalog(), cache, searchCfg, discardLogger())
	res, err := uc.Search(context.Background(), domain.SearchQuery{Query: "tech", Platform: "all"})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceReal, res.Source)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Results, 3)
	assert.Equal(t, "yt2", res.Results[0].ID)
	assert.Equal(t, "tt1", res.Results[1].ID)
	assert.Equal(t, "yt1", res.Results[2].ID)
	assert.Equal(t, []domain.Platform{domain.PlatformYouTube, domain.PlatformTikTok}, res.Platforms)
}

func TestSearchOnlyQueriesMatchingPlatform(t *testing.T) {
	yt := mocks.NewMockPlatformAdapter(t)
	yt.EXPECT().Platform().Return(domain.PlatformYouTube)
	tt := mocks.NewMockPlatformAdapter(t)
	tt.EXPECT().Platform().Return(domain.PlatformTikTok)
	tt.EXPECT().Search(mock.Anything, "chef", 20).Return([]domain.Creator{creator("tt1", domain.PlatformTikTok, 1)}).Once()

	cache := mocks.NewMockCreatorCache(t)
	cache.EXPECT().Put(mock.Anything, mock.Anything).Return(nil)

	uc := NewSearchUseCase([]port.PlatformAdapter{yt, tt}, catalog(), cache, searchCfg, discardLogger())
	res, err := uc.Search(context.Background(), domain.SearchQuery{Query: "chef", Platform: "TikTok"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceReal, res.Source)
	assert.Len(t, res.Results, 1)
}

func TestSearchFallsBackToCatalog(t *testing.T) {
	yt := adapter(t, domain.PlatformYouTube, nil)
	tt := adapter(t, domain.PlatformTikTok, []domain.Creator{})
	cache := mocks.NewMockCreatorCache(t)

	uc := NewSearchUseCase([]port.PlatformAdapter{yt, tt}, catalog(), cache, searchCfg, discardLogger())
	res, err := uc.Search(context.Background(), domain.SearchQuery{Query: "on youtube", Platform: "all"})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceMock, res.Source)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "creator-1", res.Results[0].ID)
	assert.Equal(t, "creator-3", res.Results[1].ID)
	for _, c := range res.Results {
		assert.False(t, c.IsReal)
	}
}

func TestSearchEmptyQuerySkipsAdapters(t *testing.T) {
	// No expectations: any adapter call fails the test.
	yt := mocks.NewMockPlatformAdapter(t)
	cache := mocks.NewMockCreatorCache(t)

	uc := NewSearchUseCase([]port.PlatformAdapter{yt}, catalog(), cache, searchCfg, discardLogger())
	res, err := uc.Search(context.Background(), domain.SearchQuery{Platform: "all"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMock, res.Source)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"creator-2", "creator-1", "creator-3"}, ids(res.Results))
}

func TestSearchFiltersApplyAfterSourceDecision(t *testing.T) {
	yt := adapter(t, domain.PlatformYouTube, []domain.Creator{creator("small", domain.PlatformYouTube, 10)})
	cache := mocks.NewMockCreatorCache(t)
	cache.EXPECT().Put(mock.Anything, mock.Anything).Return(nil)

	floor := int64(1000)
	uc := NewSearchUseCase([]port.PlatformAdapter{yt}, catalog(), cache, searchCfg, discardLogger())
	res, err := uc.Search(context.Background(), domain.SearchQuery{Query: "tech", Platform: "all", MinFollowers: &floor})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceReal, res.Source)
	assert.Zero(t, res.Total)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.NotNil(t, res.Platforms)
}

func TestSearchBoundsAndCountry(t *testing.T) {
	cache := mocks.NewMockCreatorCache(t)
	uc := NewSearchUseCase(nil, catalog(), cache, searchCfg, discardLogger())

	lo, hi := int64(200), int64(600)
	res, err := uc.Search(context.Background(), domain.SearchQuery{Platform: "all", MinFollowers: &lo, MaxFollowers: &hi, Country: "US"})
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-1"}, ids(res.Results))

	hi = 500
	res, err = uc.Search(context.Background(), domain.SearchQuery{Platform: "all", MaxFollowers: &hi, Country: "all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-1", "creator-3"}, ids(res.Results))
}

func TestSearchTruncatesButReportsTotal(t *testing.T) {
	var many []domain.Creator
	for i := range 30 {
		p := domain.PlatformYouTube
		if i%2 == 1 {
			p = domain.PlatformTwitch
		}
		many = append(many, creator(string(rune('a'+i)), p, int64(i)))
	}
	yt := adapter(t, domain.PlatformYouTube, many)
	cache := mocks.NewMockCreatorCache(t)
	cache.EXPECT().Put(mock.Anything, mock.Anything).Return(nil)

	uc := NewSearchUseCase([]port.PlatformAdapter{yt}, catalog(), cache, searchCfg, discardLogger())
	res, err := uc.Search(context.Background(), domain.SearchQuery{Query: "x"})
	require.NoError(t, err)

	assert.Equal(t, 30, res.Total)
	require.Len(t, res.Results, 20)
	for i := 1; i < len(res.Results); i++ {
		assert.GreaterOrEqual(t, res.Results[i-1].FollowerCount, res.Results[i].FollowerCount)
	}
	assert.ElementsMatch(t, []domain.Platform{domain.PlatformYouTube, domain.PlatformTwitch}, res.Platforms)
}

func TestSearchCacheFailureIsNotFatal(t *testing.T) {
	yt := adapter(t, domain.PlatformYouTube, []domain.Creator{creator("yt1", domain.PlatformYouTube, 1)})
	cache := mocks.NewMockCreatorCache(t)
	cache.EXPECT().Put(mock.Anything, mock.Anything).Return(errors.New("redis down"))

	uc := NewSearchUseCase([]port.PlatformAdapter{yt}, catalog(), cache, searchCfg, discardLogger())
	res, err := uc.Search(context.Background(), domain.SearchQuery{Query: "x"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceReal, res.Source)
}

func ids(cs []domain.Creator) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}
