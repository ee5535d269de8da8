package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"stormy/internal/adapter/cache"
	"stormy/internal/adapter/http"
	"stormy/internal/adapter/memory"
	"stormy/internal/adapter/mockdata"
	"stormy/internal/adapter/platform"
	"stormy/internal/adapter/postgres"
	"stormy/internal/adapter/usecase"
	"stormy/internal/config"
	"stormy/internal/core/port"
	"stormy/internal/db"
)

// main loads configuration, wires storage, platform adapters and use cases,
// then serves HTTP until SIGINT or SIGTERM and shuts down gracefully.
func main() {
	os.Exit(run())
}

func run() int {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	logger := cfg.Log.New(os.Stdout)
	if envErr != nil {
		logger.Debug("no .env file loaded", slog.Any("error", envErr))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	catalog := mockdata.NewDataset(mockdata.Generate(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), cfg.Search.MockDatasetSize))

	var (
		campaigns port.CampaignRepository = memory.NewCampaignRepository()
		users     port.UserRepository     = memory.NewUserRepository()
		creators  port.CreatorCache       = cache.NewMemory()
	)

	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(ctx, logger, cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return 1
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return 1
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool, catalog.Match("", "")); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return 1
			}
			logger.Info("demo campaign seeded", slog.String("campaign_id", db.DemoCampaignID))
		}
		campaigns = postgres.NewCampaignRepository(pool)
		users = postgres.NewUserRepository(pool)
	}

	if cfg.Redis.Enabled {
		client, err := cache.Connect(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return 1
		}
		defer client.Close()
		creators = cache.NewRedis(client, cfg.Redis.TTL)
	}

	client := &http.Client{}
	youtube := platform.NewYouTube(cfg.YouTube, client, logger)
	tokens := platform.NewClientCredentialsCache(cfg.Twitch, client)
	adapters := []port.PlatformAdapter{
		youtube,
		platform.NewTikTok(cfg.TikTok, client, logger),
		platform.NewInstagram(cfg.Instagram, client, logger),
		platform.NewTwitch(cfg.Twitch, client, tokens, logger),
		platform.NewSubstack(cfg.Substack, client, logger),
		platform.NewTwitter(logger),
		platform.NewLinkedIn(logger),
	}

	creatorSvc := usecase.NewCreatorUseCase(catalog, creators, youtube, logger)
	handler := httpadapter.NewHandler(httpadapter.Services{
		Search:    usecase.NewSearchUseCase(adapters, catalog, creators, cfg.Search, logger),
		Creators:  creatorSvc,
		Campaigns: usecase.NewCampaignUseCase(campaigns, creatorSvc),
		Users:     usecase.NewUserUseCase(users),
	}, cfg.HTTP, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.Bool("postgres", cfg.Psql.Enabled),
			slog.Bool("redis", cfg.Redis.Enabled),
			slog.Int("mock_creators", catalog.Len()),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return 1
	}
	logger.Info("server gracefully stopped")
	return 0
}
