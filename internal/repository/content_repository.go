//go:generate mockery --name ContentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository reads course content. Content is written only by seeding and admin tooling.
type ContentRepository interface {
	CreateCourse(ctx context.Context, db *gorm.DB, course *model.Course) error
	ListCourses(ctx context.Context, db *gorm.DB) ([]model.Course, error)
	FindCourseByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	ListUnitsWithLessons(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]model.Unit, error)
	FindLessonWithChallenges(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	FindChallengeWithOptions(ctx context.Context, db *gorm.DB, challengeID uuid.UUID) (*model.Challenge, error)
	CountChallengesInLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (int64, error)
	FindContentPackID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (string, error)
	SetContentPack(ctx context.Context, db *gorm.DB, courseID uuid.UUID, contentPackID string) error
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func orderBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// CreateCourse inserts a course together with its units, lessons, challenges and options.
func (r *gormContentRepository) CreateCourse(ctx context.Context, db *gorm.DB, course *model.Course) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(course)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create course", "error", result.Error, "title", course.Title)
			return model.ErrConflict
		}
		logger.Error("Error creating course in DB", "error", result.Error, "title", course.Title)
		return fmt.Errorf("gormContentRepository.CreateCourse: %w", result.Error)
	}
	return nil
}

func (r *gormContentRepository) ListCourses(ctx context.Context, db *gorm.DB) ([]model.Course, error) {
	var courses []model.Course

	if err := db.WithContext(ctx).Order("title ASC").Find(&courses).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing courses in DB", "error", err)
		return nil, fmt.Errorf("gormContentRepository.ListCourses: %w", err)
	}
	return courses, nil
}

func (r *gormContentRepository) FindCourseByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	var course model.Course

	result := db.WithContext(ctx).Where("course_id = ?", courseID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding course by ID in DB", "error", result.Error, "course_id", courseID.String())
		return nil, fmt.Errorf("gormContentRepository.FindCourseByID: %w", result.Error)
	}
	return &course, nil
}

// ListUnitsWithLessons returns the units of a course with their lessons and challenges, all in sort order.
func (r *gormContentRepository) ListUnitsWithLessons(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]model.Unit, error) {
	var units []model.Unit

	err := db.WithContext(ctx).
		Preload("Lessons", orderBySortOrder).
		Preload("Lessons.Challenges", orderBySortOrder).
		Where("course_id = ?", courseID).
		Order("sort_order ASC").
		Find(&units).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing units in DB", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormContentRepository.ListUnitsWithLessons: %w", err)
	}
	return units, nil
}

func (r *gormContentRepository) FindLessonWithChallenges(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson

	result := db.WithContext(ctx).
		Preload("Unit").
		Preload("Challenges", orderBySortOrder).
		Preload("Challenges.Options").
		Where("lesson_id = ?", lessonID).
		First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding lesson in DB", "error", result.Error, "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormContentRepository.FindLessonWithChallenges: %w", result.Error)
	}
	return &lesson, nil
}

// FindChallengeWithOptions loads a challenge with its options and the owning lesson and unit.
func (r *gormContentRepository) FindChallengeWithOptions(ctx context.Context, db *gorm.DB, challengeID uuid.UUID) (*model.Challenge, error) {
	var challenge model.Challenge

	result := db.WithContext(ctx).
		Preload("Options").
		Preload("Lesson").
		Preload("Lesson.Unit").
		Where("challenge_id = ?", challengeID).
		First(&challenge)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding challenge in DB", "error", result.Error, "challenge_id", challengeID.String())
		return nil, fmt.Errorf("gormContentRepository.FindChallengeWithOptions: %w", result.Error)
	}
	return &challenge, nil
}

func (r *gormContentRepository) CountChallengesInLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (int64, error) {
	var count int64

	err := db.WithContext(ctx).Model(&model.Challenge{}).Where("lesson_id = ?", lessonID).Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error counting challenges in DB", "error", err, "lesson_id", lessonID.String())
		return 0, fmt.Errorf("gormContentRepository.CountChallengesInLesson: %w", err)
	}
	return count, nil
}

// FindContentPackID returns the content pack of a course, or model.DefaultContentPackID when none is mapped.
func (r *gormContentRepository) FindContentPackID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (string, error) {
	var pack model.CourseContentPack

	result := db.WithContext(ctx).Where("course_id = ?", courseID).Limit(1).Find(&pack)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding content pack in DB", "error", result.Error, "course_id", courseID.String())
		return "", fmt.Errorf("gormContentRepository.FindContentPackID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.DefaultContentPackID, nil
	}
	return pack.ContentPackID, nil
}

func (r *gormContentRepository) SetContentPack(ctx context.Context, db *gorm.DB, courseID uuid.UUID, contentPackID string) error {
	pack := &model.CourseContentPack{CourseID: courseID, ContentPackID: contentPackID}

	if err := db.WithContext(ctx).Save(pack).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error saving content pack in DB", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormContentRepository.SetContentPack: %w", err)
	}
	return nil
}
