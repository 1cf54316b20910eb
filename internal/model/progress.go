// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProgress holds the per-user state shared by all courses.
type UserProgress struct {
	UserID         string     `gorm:"primaryKey;type:varchar(191)"`
	UserName       string     `gorm:"not null;default:'User'"`
	UserImageSrc   string     `gorm:"not null;default:''"`
	ActiveCourseID *uuid.UUID `gorm:"type:uuid;index"`
	Hearts         int        `gorm:"not null;check:hearts >= 0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	ActiveCourse *Course `gorm:"foreignKey:ActiveCourseID;references:CourseID"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// CourseProgress holds the points a user earned in one course.
type CourseProgress struct {
	CourseProgressID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           string    `gorm:"type:varchar(191);not null;index:idx_course_progress_user_course,unique"`
	CourseID         uuid.UUID `gorm:"type:uuid;not null;index:idx_course_progress_user_course,unique"`
	Points           int       `gorm:"not null;default:0;check:points >= 0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Course *Course `gorm:"foreignKey:CourseID;references:CourseID"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}

func (p *CourseProgress) BeforeCreate(tx *gorm.DB) error {
	if p.CourseProgressID == uuid.Nil {
		p.CourseProgressID = uuid.New()
	}
	return nil
}

// ChallengeProgress records that a user has answered a challenge.
type ChallengeProgress struct {
	ChallengeProgressID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              string    `gorm:"type:varchar(191);not null;index:idx_challenge_progress_user_challenge,unique"`
	ChallengeID         uuid.UUID `gorm:"type:uuid;not null;index:idx_challenge_progress_user_challenge,unique"`
	Completed           bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ChallengeProgress) TableName() string {
	return "challenge_progress"
}

func (p *ChallengeProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ChallengeProgressID == uuid.Nil {
		p.ChallengeProgressID = uuid.New()
	}
	return nil
}

// AllModels lists every table owned by the engine, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Course{},
		&Unit{},
		&Lesson{},
		&Challenge{},
		&ChallengeOption{},
		&CourseContentPack{},
		&UserProgress{},
		&CourseProgress{},
		&ChallengeProgress{},
	}
}
