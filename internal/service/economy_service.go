//go:generate mockery --name EconomyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"lingo_progress/internal/config"
	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/repository"

	"gorm.io/gorm"
)

// EconomyService converts points into hearts.
type EconomyService interface {
	RefillHearts(ctx context.Context, userID string) (*model.RefillResult, error)
	PurchaseHearts(ctx context.Context, userID string, req *model.PurchaseHeartsRequest) error
}

type economyService struct {
	db         *gorm.DB
	userRepo   repository.UserProgressRepository
	courseRepo repository.CourseProgressRepository
	game       config.GameConfig
	observer   PointsObserver
}

func NewEconomyService(
	db *gorm.DB,
	userRepo repository.UserProgressRepository,
	courseRepo repository.CourseProgressRepository,
	game config.GameConfig,
	observer PointsObserver,
) EconomyService {
	return &economyService{
		db:         db,
		userRepo:   userRepo,
		courseRepo: courseRepo,
		game:       game,
		observer:   observer,
	}
}

// RefillHearts spends RefillCost points of the active course to set hearts to the
// maximum. Both conditional updates run in one transaction; either failing rolls
// back the other.
func (s *economyService) RefillHearts(ctx context.Context, userID string) (*model.RefillResult, error) {
	if userID == "" {
		return nil, unauthorizedError()
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	var result *model.RefillResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.userRepo.FindByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return loadError(err, "USER_PROGRESS_NOT_FOUND", "Select a course first.")
		}
		if progress.ActiveCourseID == nil {
			return model.NewAppError("NO_ACTIVE_COURSE", "Select a course first.", "", model.ErrNotFound)
		}
		courseID := *progress.ActiveCourseID

		if progress.Hearts >= s.game.MaxHearts {
			return heartsAlreadyFullError()
		}

		spent, err := s.courseRepo.SpendPoints(ctx, tx, userID, courseID, s.game.RefillCost)
		if err != nil {
			return internalError(err)
		}
		if !spent {
			logger.Info("Refill rejected: not enough points", "refill_cost", s.game.RefillCost)
			return model.NewAppError("INSUFFICIENT_POINTS", "You do not have enough points to refill hearts.", "", model.ErrInsufficientPoints)
		}

		refilled, err := s.userRepo.RefillHearts(ctx, tx, userID, s.game.MaxHearts)
		if err != nil {
			return internalError(err)
		}
		if !refilled {
			return heartsAlreadyFullError()
		}

		courseProgress, err := s.courseRepo.Find(ctx, tx, userID, courseID)
		if err != nil {
			return internalError(err)
		}
		result = &model.RefillResult{Hearts: s.game.MaxHearts, Points: courseProgress.Points}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	if s.observer != nil {
		s.observer.PointsChanged(ctx, userID)
	}
	logger.Info("Hearts refilled", "hearts", result.Hearts, "points", result.Points)
	return result, nil
}

// PurchaseHearts always declines: hearts are earned, never bought. The returned
// AppError wraps model.ErrNotPurchasable so callers can show an explanation.
func (s *economyService) PurchaseHearts(ctx context.Context, userID string, req *model.PurchaseHeartsRequest) error {
	if userID == "" {
		return unauthorizedError()
	}
	middleware.GetLogger(ctx).Info("Heart purchase declined", "user_id", userID, "quantity", req.Quantity)
	return model.NewAppError("NOT_PURCHASABLE", "Hearts cannot be bought. Earn them by practicing completed lessons or refill them with points.", "", model.ErrNotPurchasable)
}

func heartsAlreadyFullError() *model.AppError {
	return model.NewAppError("HEARTS_ALREADY_FULL", "Your hearts are already full.", "", model.ErrHeartsAlreadyFull)
}
