package scheduler

import (
	"context"
	"log/slog"
	"time"

	"lingo_progress/internal/middleware"

	"github.com/go-co-op/gocron"
)

// Refresher recomputes a derived view.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs the periodic leaderboard refresh.
type Scheduler struct {
	scheduler   *gocron.Scheduler
	leaderboard Refresher
	interval    time.Duration
	logger      *slog.Logger
}

func New(leaderboard Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler:   gocron.NewScheduler(time.UTC),
		leaderboard: leaderboard,
		interval:    interval,
		logger:      logger.With("component", "scheduler"),
	}
}

// Start registers the jobs and runs them in the background. The first refresh
// runs immediately.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.refreshLeaderboard); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "leaderboard_refresh", s.interval.String())
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) refreshLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	ctx = middleware.WithLogger(ctx, s.logger.With("job", "leaderboard_refresh"))

	if err := s.leaderboard.Refresh(ctx); err != nil {
		s.logger.Error("Leaderboard refresh failed", "error", err)
	}
}
