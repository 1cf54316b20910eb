// internal/cache/redis_leaderboard_test.go
package cache

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"lingo_progress/internal/config"
	"lingo_progress/internal/model"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redisAddr string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		log.Printf("Docker unavailable, redis tests will be skipped: %v", err)
		os.Exit(m.Run())
	}
	pool.MaxWait = 60 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start redis: %s", err)
	}

	addr := resource.GetHostPort("6379/tcp")
	if err := pool.Retry(func() error {
		c, err := NewRedisLeaderboardCache(redisConfig(addr))
		if err != nil {
			return err
		}
		return c.Close()
	}); err != nil {
		pool.Purge(resource)
		log.Fatalf("Could not connect to redis: %s", err)
	}
	redisAddr = addr

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge redis: %s", err)
	}
	os.Exit(code)
}

func redisConfig(addr string) config.Config {
	var cfg config.Config
	cfg.Redis.Addr = addr
	return cfg
}

func newTestCache(t *testing.T) *RedisLeaderboardCache {
	t.Helper()
	if redisAddr == "" {
		t.Skip("redis container not running")
	}
	c, err := NewRedisLeaderboardCache(redisConfig(redisAddr))
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Invalidate(context.Background())
		c.Close()
	})
	return c
}

func TestRedisLeaderboardCache(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	entries := []model.LeaderboardEntry{
		{UserID: "a", DisplayName: "Ana", TotalPoints: 120},
		{UserID: "b", DisplayName: "Ben", TotalPoints: 40},
	}
	require.NoError(t, c.Set(ctx, entries, time.Minute))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entries, got)

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLeaderboardCache_Expires(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, []model.LeaderboardEntry{}, 100*time.Millisecond))
	assert.Eventually(t, func() bool {
		_, ok, err := c.Get(ctx)
		return err == nil && !ok
	}, 2*time.Second, 50*time.Millisecond)
}

func TestNewRedisLeaderboardCache_RequiresAddr(t *testing.T) {
	_, err := NewRedisLeaderboardCache(config.Config{})
	assert.Error(t, err)
}
