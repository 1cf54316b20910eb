//go:generate mockery --name CourseProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseProgressRepository owns the per-course points counter.
type CourseProgressRepository interface {
	EnsureExists(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID) (*model.CourseProgress, error)
	Find(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID) (*model.CourseProgress, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID string) ([]model.CourseProgress, error)
	AddPoints(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID, delta int) error
	SpendPoints(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID, amount int) (bool, error)
}

type gormCourseProgressRepository struct{}

func NewGormCourseProgressRepository() CourseProgressRepository {
	return &gormCourseProgressRepository{}
}

// EnsureExists inserts an empty row for (userID, courseID) unless one exists and
// returns the stored row. The unique index decides races between concurrent callers.
func (r *gormCourseProgressRepository) EnsureExists(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID) (*model.CourseProgress, error) {
	logger := middleware.GetLogger(ctx)

	progress := &model.CourseProgress{UserID: userID, CourseID: courseID}
	result := db.WithContext(ctx).
		Omit("Course").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).
		Create(progress)
	if result.Error != nil {
		logger.Error(
			"Error inserting course progress in DB",
			"error", result.Error,
			"user_id", userID,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormCourseProgressRepository.EnsureExists: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Debug("Course progress created", "user_id", userID, "course_id", courseID.String())
	}

	return r.Find(ctx, db, userID, courseID)
}

func (r *gormCourseProgressRepository) Find(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID) (*model.CourseProgress, error) {
	var progress model.CourseProgress

	result := db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error(
			"Error finding course progress in DB",
			"error", result.Error,
			"user_id", userID,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormCourseProgressRepository.Find: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormCourseProgressRepository) ListByUser(ctx context.Context, db *gorm.DB, userID string) ([]model.CourseProgress, error) {
	var rows []model.CourseProgress

	err := db.WithContext(ctx).Preload("Course").Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing course progress in DB", "error", err, "user_id", userID)
		return nil, fmt.Errorf("gormCourseProgressRepository.ListByUser: %w", err)
	}
	return rows, nil
}

// AddPoints increments points in place. The UPDATE holds the row lock until commit,
// which serializes concurrent submissions of the same user in the same course.
func (r *gormCourseProgressRepository) AddPoints(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID, delta int) error {
	result := db.WithContext(ctx).
		Model(&model.CourseProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Update("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error(
			"Error adding points in DB",
			"error", result.Error,
			"user_id", userID,
			"course_id", courseID.String(),
			"delta", delta,
		)
		return fmt.Errorf("gormCourseProgressRepository.AddPoints: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SpendPoints subtracts amount only when the balance covers it.
func (r *gormCourseProgressRepository) SpendPoints(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID, amount int) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.CourseProgress{}).
		Where("user_id = ? AND course_id = ? AND points >= ?", userID, courseID, amount).
		Update("points", gorm.Expr("points - ?", amount))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error(
			"Error spending points in DB",
			"error", result.Error,
			"user_id", userID,
			"course_id", courseID.String(),
			"amount", amount,
		)
		return false, fmt.Errorf("gormCourseProgressRepository.SpendPoints: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
