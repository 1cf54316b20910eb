//go:generate mockery --name LeaderboardService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"sync/atomic"
	"time"

	"lingo_progress/internal/config"
	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/repository"

	"gorm.io/gorm"
)

// LeaderboardService ranks users by the sum of their points over all courses.
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	Refresh(ctx context.Context) error
	PointsObserver
}

// LeaderboardCache stores the last computed ranking. A miss returns ok=false.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]model.LeaderboardEntry, bool, error)
	Set(ctx context.Context, entries []model.LeaderboardEntry, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type leaderboardService struct {
	db       *gorm.DB
	userRepo repository.UserProgressRepository
	cache    LeaderboardCache
	ttl      time.Duration
	size     int

	// generation counts point changes seen by this process. A ranking computed
	// before a change is not written back to the cache.
	generation atomic.Uint64
}

// NewLeaderboardService builds the service. cache may be nil, in which case every
// call reads the database.
func NewLeaderboardService(db *gorm.DB, userRepo repository.UserProgressRepository, cache LeaderboardCache, ttl time.Duration, game config.GameConfig) LeaderboardService {
	return &leaderboardService{
		db:       db,
		userRepo: userRepo,
		cache:    cache,
		ttl:      ttl,
		size:     game.LeaderboardSize,
	}
}

// GetLeaderboard returns at most LeaderboardSize entries, highest total first.
// Cache failures are logged and fall through to the database. Point changes
// committed by other instances are only seen once the cached copy expires or the
// refresh job overwrites it.
func (s *leaderboardService) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	logger := middleware.GetLogger(ctx)

	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.Warn("Leaderboard cache read failed", "error", err)
		} else if ok {
			return entries, nil
		}
	}

	generation := s.generation.Load()
	entries, err := s.query(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, entries, generation)
	return entries, nil
}

// Refresh recomputes the ranking and overwrites the cached copy.
func (s *leaderboardService) Refresh(ctx context.Context) error {
	generation := s.generation.Load()
	entries, err := s.query(ctx)
	if err != nil {
		return err
	}
	s.store(ctx, entries, generation)
	middleware.GetLogger(ctx).Debug("Leaderboard refreshed", "entries", len(entries))
	return nil
}

// PointsChanged drops the cached ranking after a committed point change.
func (s *leaderboardService) PointsChanged(ctx context.Context, userID string) {
	s.generation.Add(1)
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		middleware.GetLogger(ctx).Warn("Leaderboard cache invalidation failed", "user_id", userID, "error", err)
	}
}

func (s *leaderboardService) query(ctx context.Context) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		entries, err = s.userRepo.TopByTotalPoints(ctx, tx, s.size)
		return err
	}, snapshotTxOptions)
	if err != nil {
		return nil, internalError(err)
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	return entries, nil
}

// store caches entries computed at generation. It skips the write when points
// changed during the query, and drops the write again when a change lands
// between the check and the Set.
func (s *leaderboardService) store(ctx context.Context, entries []model.LeaderboardEntry, generation uint64) {
	if s.cache == nil {
		return
	}
	logger := middleware.GetLogger(ctx)
	if s.generation.Load() != generation {
		logger.Debug("Leaderboard changed during query, not caching")
		return
	}
	if err := s.cache.Set(ctx, entries, s.ttl); err != nil {
		logger.Warn("Leaderboard cache write failed", "error", err)
		return
	}
	if s.generation.Load() != generation {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Warn("Leaderboard cache invalidation failed", "error", err)
		}
	}
}
