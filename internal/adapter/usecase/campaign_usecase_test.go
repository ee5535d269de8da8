package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stormy/internal/adapter/memory"
	"stormy/internal/core/domain"
	"stormy/internal/core/port"
	"stormy/internal/core/port/mocks"
)

func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.Name == "Q1 Push" && c.Status == domain.CampaignStatusDraft && len(c.Creators) == 0
	})).Return(nil)

	uc := NewCampaignUseCase(repo, mocks.NewMockCreatorUseCase(t))
	c, err := uc.CreateCampaign(context.Background(), port.CreateCampaignReq{Name: "Q1 Push", Budget: 5000})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 5000.0, c.Budget)
	assert.Equal(t, domain.CampaignStatusDraft, c.Status)
	assert.NotNil(t, c.Creators)
	assert.Empty(t, c.Creators)
	assert.JSONEq(t, `{}`, string(c.TargetCriteria))
}

func TestCreateCampaignKeepsTargetCriteriaVerbatim(t *testing.T) {
	raw := `{"niche":"Tech","platform":"youtube","minFollowers":"1000","extra":[1,2]}`
	uc := NewCampaignUseCase(memory.NewCampaignRepository(), mocks.NewMockCreatorUseCase(t))

	c, err := uc.CreateCampaign(context.Background(), port.CreateCampaignReq{Name: "Free form", TargetCriteria: domain.TargetCriteria(raw)})
	require.NoError(t, err)
	assert.Equal(t, raw, string(c.TargetCriteria))

	list, err := uc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, raw, string(list[0].TargetCriteria))
}

func TestAddCreatorUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, port.ErrCampaignNotFound)

	uc := NewCampaignUseCase(repo, mocks.NewMockCreatorUseCase(t))
	_, err := uc.AddCreator(context.Background(), "missing", domain.CreatorRef{ID: "creator-1"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestAddCreatorUnknownCreator(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Get(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1"}, nil)
	creators := mocks.NewMockCreatorUseCase(t)
	creators.EXPECT().GetCreator(mock.Anything, domain.CreatorRef{ID: "ghost"}).Return(nil, port.ErrCreatorNotFound)

	uc := NewCampaignUseCase(repo, creators)
	_, err := uc.AddCreator(context.Background(), "c1", domain.CreatorRef{ID: "ghost"})
	assert.ErrorIs(t, err, port.ErrCreatorNotFound)
}

func TestAddCreatorIsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c1 := creator("creator-1", domain.PlatformYouTube, 100)

	creators := mocks.NewMockCreatorUseCase(t)
	creators.EXPECT().GetCreator(mock.Anything, domain.CreatorRef{ID: "creator-1"}).Return(&c1, nil).Once()

	uc := NewCampaignUseCase(memory.NewCampaignRepository(), creators)
	uc.now = func() time.Time { return now }

	camp, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{Name: "Launch"})
	require.NoError(t, err)

	got, err := uc.AddCreator(ctx, camp.ID, domain.CreatorRef{ID: "creator-1"})
	require.NoError(t, err)
	require.Len(t, got.Creators, 1)
	assert.Equal(t, domain.MembershipPending, got.Creators[0].Status)
	assert.Equal(t, now, got.Creators[0].AddedAt)

	got, err = uc.AddCreator(ctx, camp.ID, domain.CreatorRef{ID: "creator-1"})
	require.NoError(t, err)
	assert.Len(t, got.Creators, 1)

	// The stored copy is a snapshot.
	c1.FollowerCount = 999
	got, err = uc.AddCreator(ctx, camp.ID, domain.CreatorRef{ID: "creator-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Creators[0].FollowerCount)
}

func TestListCampaignsNeverNil(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, nil)

	uc := NewCampaignUseCase(repo, mocks.NewMockCreatorUseCase(t))
	list, err := uc.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
}

func TestGetStats(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	member := func(p domain.Platform, followers int64, er float64) domain.CampaignCreator {
		c := creator("x", p, followers)
		c.EngagementRate = er
		return domain.CampaignCreator{Creator: c}
	}
	repo.EXPECT().Get(mock.Anything, "c1").Return(&domain.Campaign{
		ID:     "c1",
		Budget: 1000,
		Creators: []domain.CampaignCreator{
			member(domain.PlatformYouTube, 100, 2),
			member(domain.PlatformYouTube, 200, 3),
			member(domain.PlatformTikTok, 300, 4.5),
		},
	}, nil)
	repo.EXPECT().Get(mock.Anything, "empty").Return(&domain.Campaign{ID: "empty", Budget: 50}, nil)

	uc := NewCampaignUseCase(repo, mocks.NewMockCreatorUseCase(t))
	stats, err := uc.GetStats(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.CreatorCount)
	assert.Equal(t, int64(600), stats.TotalReach)
	assert.Equal(t, 3.17, stats.AverageEngagementRate)
	assert.Equal(t, 333.33, stats.BudgetPerCreator)
	assert.Equal(t, map[string]int{"YouTube": 2, "TikTok": 1}, stats.Platforms)

	stats, err = uc.GetStats(context.Background(), "empty")
	require.NoError(t, err)
	assert.Zero(t, stats.CreatorCount)
	assert.Zero(t, stats.BudgetPerCreator)
	assert.Empty(t, stats.Platforms)
}
