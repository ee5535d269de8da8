package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

const creatorKeyPrefix = "creator:"

// Connect initializes a Redis client from a redis:// URL or host:port and
// pings it.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Redis stores creators as JSON under creator:<platform>:<id> with a
// fixed TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func creatorKey(p domain.Platform, id string) string {
	return creatorKeyPrefix + string(p) + ":" + id
}

// Get fetches every candidate key in one round trip and returns the first
// hit in candidate order.
func (r *Redis) Get(ctx context.Context, ref domain.CreatorRef) (*domain.Creator, error) {
	platforms := candidates(ref)
	keys := make([]string, len(platforms))
	for i, p := range platforms {
		keys[i] = creatorKey(p, ref.ID)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get creator %q: %w", ref.ID, err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var c domain.Creator
		if err = json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("decode creator %q: %w", ref.ID, err)
		}
		return &c, nil
	}
	return nil, port.ErrCreatorNotFound
}

func (r *Redis) Put(ctx context.Context, creators []domain.Creator) error {
	if len(creators) == 0 {
		return nil
	}
	_, err := r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, c := range creators {
			if c.ID == "" {
				continue
			}
			raw, err := json.Marshal(c)
			if err != nil {
				return err
			}
			p.Set(ctx, creatorKey(c.Platform, c.ID), raw, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put creators: %w", err)
	}
	return nil
}
