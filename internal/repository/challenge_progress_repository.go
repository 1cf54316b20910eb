//go:generate mockery --name ChallengeProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ChallengeProgressRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID string, challengeID uuid.UUID) (*model.ChallengeProgress, error)
	CreateCompleted(ctx context.Context, db *gorm.DB, userID string, challengeID uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, db *gorm.DB, progressID uuid.UUID) error
	CountCompletedInLesson(ctx context.Context, db *gorm.DB, userID string, lessonID uuid.UUID) (int64, error)
	ListCompletedChallengeIDs(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID) ([]uuid.UUID, error)
}

type gormChallengeProgressRepository struct{}

func NewGormChallengeProgressRepository() ChallengeProgressRepository {
	return &gormChallengeProgressRepository{}
}

func (r *gormChallengeProgressRepository) Find(ctx context.Context, db *gorm.DB, userID string, challengeID uuid.UUID) (*model.ChallengeProgress, error) {
	var progress model.ChallengeProgress

	result := db.WithContext(ctx).Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error(
			"Error finding challenge progress in DB",
			"error", result.Error,
			"user_id", userID,
			"challenge_id", challengeID.String(),
		)
		return nil, fmt.Errorf("gormChallengeProgressRepository.Find: %w", result.Error)
	}
	return &progress, nil
}

// CreateCompleted inserts a completed row. It returns false when a row for the
// pair already exists, i.e. a concurrent request won the first attempt.
func (r *gormChallengeProgressRepository) CreateCompleted(ctx context.Context, db *gorm.DB, userID string, challengeID uuid.UUID) (bool, error) {
	progress := &model.ChallengeProgress{UserID: userID, ChallengeID: challengeID, Completed: true}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
			DoNothing: true,
		}).
		Create(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error(
			"Error creating challenge progress in DB",
			"error", result.Error,
			"user_id", userID,
			"challenge_id", challengeID.String(),
		)
		return false, fmt.Errorf("gormChallengeProgressRepository.CreateCompleted: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormChallengeProgressRepository) MarkCompleted(ctx context.Context, db *gorm.DB, progressID uuid.UUID) error {
	result := db.WithContext(ctx).
		Model(&model.ChallengeProgress{}).
		Where("challenge_progress_id = ? AND completed = ?", progressID, false).
		Update("completed", true)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error marking challenge progress completed in DB", "error", result.Error, "challenge_progress_id", progressID.String())
		return fmt.Errorf("gormChallengeProgressRepository.MarkCompleted: %w", result.Error)
	}
	return nil
}

func (r *gormChallengeProgressRepository) CountCompletedInLesson(ctx context.Context, db *gorm.DB, userID string, lessonID uuid.UUID) (int64, error) {
	var count int64

	err := db.WithContext(ctx).
		Model(&model.ChallengeProgress{}).
		Joins("JOIN challenges ON challenges.challenge_id = challenge_progress.challenge_id").
		Where("challenge_progress.user_id = ? AND challenge_progress.completed = ? AND challenges.lesson_id = ?", userID, true, lessonID).
		Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error(
			"Error counting completed challenges in DB",
			"error", err,
			"user_id", userID,
			"lesson_id", lessonID.String(),
		)
		return 0, fmt.Errorf("gormChallengeProgressRepository.CountCompletedInLesson: %w", err)
	}
	return count, nil
}

// ListCompletedChallengeIDs returns every completed challenge of the user within one course.
func (r *gormChallengeProgressRepository) ListCompletedChallengeIDs(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := db.WithContext(ctx).
		Model(&model.ChallengeProgress{}).
		Joins("JOIN challenges ON challenges.challenge_id = challenge_progress.challenge_id").
		Joins("JOIN lessons ON lessons.lesson_id = challenges.lesson_id").
		Joins("JOIN units ON units.unit_id = lessons.unit_id").
		Where("challenge_progress.user_id = ? AND challenge_progress.completed = ? AND units.course_id = ?", userID, true, courseID).
		Pluck("challenge_progress.challenge_id", &ids).Error
	if err != nil {
		middleware.GetLogger(ctx).Error(
			"Error listing completed challenges in DB",
			"error", err,
			"user_id", userID,
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormChallengeProgressRepository.ListCompletedChallengeIDs: %w", err)
	}
	return ids, nil
}
