package usecase

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"stormy/internal/config/configs"
	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

// SearchUseCase fans a query out to every selected platform adapter and
// falls back to the generated catalog when none of them returns anything.
type SearchUseCase struct {
	adapters []port.PlatformAdapter
	catalog  port.CreatorCatalog
	cache    port.CreatorCache
	cfg      configs.Search
	logger   *slog.Logger
}

// NewSearchUseCase creates the aggregator. Adapter order fixes the order in
// which live results are concatenated before sorting.
func NewSearchUseCase(adapters []port.PlatformAdapter, catalog port.CreatorCatalog, cache port.CreatorCache, cfg configs.Search, logger *slog.Logger) *SearchUseCase {
	return &SearchUseCase{adapters: adapters, catalog: catalog, cache: cache, cfg: cfg, logger: logger}
}

// Search decides between live and generated results first and only then
// applies follower and country filters, so a filtered-out live result set
// never turns into a mock response.
func (u *SearchUseCase) Search(ctx context.Context, q domain.SearchQuery) (*port.SearchResult, error) {
	var live []domain.Creator
	if q.Query != "" {
		live = u.fanOut(ctx, q)
	}

	source := domain.SourceReal
	candidates := live
	if len(live) == 0 {
		source = domain.SourceMock
		candidates = u.catalog.Match(q.Platform, q.Query)
	} else if err := u.cache.Put(ctx, live); err != nil {
		u.logger.Warn("cache live creators", slog.Any("error", err))
	}

	results := make([]domain.Creator, 0, len(candidates))
	for _, c := range candidates {
		if q.Accepts(c) {
			results = append(results, c)
		}
	}
	slices.SortStableFunc(results, func(a, b domain.Creator) int {
		switch {
		case a.FollowerCount > b.FollowerCount:
			return -1
		case a.FollowerCount < b.FollowerCount:
			return 1
		}
		return 0
	})

	platforms := make([]domain.Platform, 0)
	for _, c := range results {
		if !slices.Contains(platforms, c.Platform) {
			platforms = append(platforms, c.Platform)
		}
	}
	total := len(results)
	if u.cfg.ResultLimit > 0 && len(results) > u.cfg.ResultLimit {
		results = results[:u.cfg.ResultLimit]
	}

	u.logger.Info("creator search",
		slog.String("query", q.Query),
		slog.String("platform", q.Platform),
		slog.String("source", source),
		slog.Int("total", total),
	)
	return &port.SearchResult{
		Results:   results,
		Total:     total,
		Source:    source,
		Platforms: platforms,
	}, nil
}

// fanOut runs the selected adapters concurrently and concatenates their
// results in adapter order.
func (u *SearchUseCase) fanOut(ctx context.Context, q domain.SearchQuery) []domain.Creator {
	var selected []port.PlatformAdapter
	for _, a := range u.adapters {
		if a.Platform().Matches(q.Platform) {
			selected = append(selected, a)
		}
	}

	buckets := make([][]domain.Creator, len(selected))
	var g errgroup.Group
	for i, a := range selected {
		g.Go(func() error {
			buckets[i] = a.Search(ctx, q.Query, u.cfg.MaxResultsPerPlatform)
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.Creator
	for _, b := range buckets {
		out = append(out, b...)
	}
	return out
}
