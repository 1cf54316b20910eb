package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lingo_progress/internal/config"
	"lingo_progress/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

const leaderboardKey = "lingo_progress:leaderboard"

// RedisLeaderboardCache keeps the ranked leaderboard as one JSON value.
type RedisLeaderboardCache struct {
	rdb *goredis.Client
	key string
}

// NewRedisLeaderboardCache connects and pings the server before returning.
func NewRedisLeaderboardCache(cfg config.Config) (*RedisLeaderboardCache, error) {
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisLeaderboardCache{rdb: rdb, key: leaderboardKey}, nil
}

func (c *RedisLeaderboardCache) Get(ctx context.Context) ([]model.LeaderboardEntry, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("RedisLeaderboardCache.Get: %w", err)
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("RedisLeaderboardCache.Get: decode: %w", err)
	}
	return entries, true, nil
}

// Set stores entries. A zero ttl keeps them until the next Set or Invalidate.
func (c *RedisLeaderboardCache) Set(ctx context.Context, entries []model.LeaderboardEntry, ttl time.Duration) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("RedisLeaderboardCache.Set: encode: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("RedisLeaderboardCache.Set: %w", err)
	}
	return nil
}

func (c *RedisLeaderboardCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("RedisLeaderboardCache.Invalidate: %w", err)
	}
	return nil
}

func (c *RedisLeaderboardCache) Close() error {
	return c.rdb.Close()
}
