//go:generate mockery --name UserProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserProgressRepository owns the hearts counter. Every heart mutation is a single
// conditional UPDATE and reports whether a row changed.
type UserProgressRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*model.UserProgress, error)
	FindByUserIDForUpdate(ctx context.Context, db *gorm.DB, userID string) (*model.UserProgress, error)
	Upsert(ctx context.Context, db *gorm.DB, progress *model.UserProgress) error
	DecrementHeart(ctx context.Context, db *gorm.DB, userID string) (bool, error)
	RestoreHeart(ctx context.Context, db *gorm.DB, userID string, maxHearts int) (bool, error)
	RefillHearts(ctx context.Context, db *gorm.DB, userID string, maxHearts int) (bool, error)
	TopByTotalPoints(ctx context.Context, db *gorm.DB, limit int) ([]model.LeaderboardEntry, error)
}

type gormUserProgressRepository struct{}

func NewGormUserProgressRepository() UserProgressRepository {
	return &gormUserProgressRepository{}
}

func (r *gormUserProgressRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*model.UserProgress, error) {
	var progress model.UserProgress

	result := db.WithContext(ctx).Preload("ActiveCourse").Where("user_id = ?", userID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error(
			"Error finding user progress in DB",
			"error", result.Error,
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormUserProgressRepository.FindByUserID: %w", result.Error)
	}
	return &progress, nil
}

// FindByUserIDForUpdate reads the row under a row lock held until the transaction
// ends. Mutating paths take this lock first so they agree on lock order. SQLite
// ignores the clause; its single writer already serializes transactions.
func (r *gormUserProgressRepository) FindByUserIDForUpdate(ctx context.Context, db *gorm.DB, userID string) (*model.UserProgress, error) {
	var progress model.UserProgress

	result := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error(
			"Error locking user progress in DB",
			"error", result.Error,
			"user_id", userID,
		)
		return nil, fmt.Errorf("gormUserProgressRepository.FindByUserIDForUpdate: %w", result.Error)
	}
	return &progress, nil
}

// Upsert inserts the row or updates the profile and active course. Hearts of an
// existing row are never touched here.
func (r *gormUserProgressRepository) Upsert(ctx context.Context, db *gorm.DB, progress *model.UserProgress) error {
	result := db.WithContext(ctx).
		Omit("ActiveCourse").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_name", "user_image_src", "active_course_id", "updated_at"}),
		}).
		Create(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error(
			"Error upserting user progress in DB",
			"error", result.Error,
			"user_id", progress.UserID,
		)
		return fmt.Errorf("gormUserProgressRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormUserProgressRepository) DecrementHeart(ctx context.Context, db *gorm.DB, userID string) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("user_id = ? AND hearts > ?", userID, 0).
		Update("hearts", gorm.Expr("hearts - ?", 1))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error decrementing hearts in DB", "error", result.Error, "user_id", userID)
		return false, fmt.Errorf("gormUserProgressRepository.DecrementHeart: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormUserProgressRepository) RestoreHeart(ctx context.Context, db *gorm.DB, userID string, maxHearts int) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("user_id = ? AND hearts < ?", userID, maxHearts).
		Update("hearts", gorm.Expr("hearts + ?", 1))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error restoring heart in DB", "error", result.Error, "user_id", userID)
		return false, fmt.Errorf("gormUserProgressRepository.RestoreHeart: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormUserProgressRepository) RefillHearts(ctx context.Context, db *gorm.DB, userID string, maxHearts int) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("user_id = ? AND hearts < ?", userID, maxHearts).
		Update("hearts", maxHearts)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error refilling hearts in DB", "error", result.Error, "user_id", userID)
		return false, fmt.Errorf("gormUserProgressRepository.RefillHearts: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// TopByTotalPoints sums points over every course of each user. Users without
// course progress rank with zero points. Ties come back in no particular order.
func (r *gormUserProgressRepository) TopByTotalPoints(ctx context.Context, db *gorm.DB, limit int) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry

	err := db.WithContext(ctx).
		Table("user_progress AS up").
		Select("up.user_id, up.user_name, up.user_image_src, COALESCE(SUM(cp.points), 0) AS total_points").
		Joins("LEFT JOIN course_progress AS cp ON cp.user_id = up.user_id").
		Group("up.user_id, up.user_name, up.user_image_src").
		Order("total_points DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error aggregating leaderboard in DB", "error", err)
		return nil, fmt.Errorf("gormUserProgressRepository.TopByTotalPoints: %w", err)
	}
	return entries, nil
}
