// internal/model/dto.go
package model

import "github.com/google/uuid"

// SelectCourseRequest activates a course for the caller.
type SelectCourseRequest struct {
	CourseID     uuid.UUID `json:"course_id" validate:"required"`
	UserName     string    `json:"user_name" validate:"omitempty,max=100"`
	UserImageSrc string    `json:"user_image_src" validate:"omitempty,max=500"`
}

// SubmitAnswerRequest carries the option picked for a challenge.
type SubmitAnswerRequest struct {
	OptionID uuid.UUID `json:"option_id" validate:"required"`
}

// SubmitAnswerResult is the state after a submission has been applied.
type SubmitAnswerResult struct {
	Correct         bool `json:"correct"`
	Practice        bool `json:"practice"`
	Hearts          int  `json:"hearts"`
	Points          int  `json:"points"`
	LessonCompleted bool `json:"lesson_completed"`
	CourseCompleted bool `json:"course_completed"`
}

// RefillResult is the state after a successful heart refill.
type RefillResult struct {
	Hearts int `json:"hearts"`
	Points int `json:"points"`
}

// PurchaseHeartsRequest is an attempt to buy hearts with external currency.
// It is not validated: every attempt is declined the same way.
type PurchaseHeartsRequest struct {
	Quantity int `json:"quantity"`
}

// PurchaseHeartsResponse is returned with 200 when a purchase is declined.
type PurchaseHeartsResponse struct {
	Purchased bool   `json:"purchased"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type CoursePoints struct {
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	Points      int       `json:"points"`
}

// ProgressSummary is the caller's overall progress.
type ProgressSummary struct {
	UserID                 string         `json:"user_id"`
	UserName               string         `json:"user_name"`
	UserImageSrc           string         `json:"user_image_src"`
	ActiveCourse           *Course        `json:"active_course"`
	ContentPackID          string         `json:"content_pack_id"`
	Hearts                 int            `json:"hearts"`
	PerCoursePoints        []CoursePoints `json:"per_course_points"`
	ActiveLessonID         *uuid.UUID     `json:"active_lesson_id"`
	ActiveLessonPercentage int            `json:"active_lesson_percentage"`
}

type LessonState struct {
	LessonID            uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Order               int       `json:"order"`
	TotalChallenges     int       `json:"total_challenges"`
	CompletedChallenges int       `json:"completed_challenges"`
	Completed           bool      `json:"completed"`
	Locked              bool      `json:"locked"`
}

type UnitWithLockState struct {
	UnitID      uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Order       int           `json:"order"`
	Completed   bool          `json:"completed"`
	Lessons     []LessonState `json:"lessons"`
}

// CourseSchedule is the evaluated lock state of one course.
type CourseSchedule struct {
	CourseID               uuid.UUID           `json:"course_id"`
	Units                  []UnitWithLockState `json:"units"`
	CourseCompleted        bool                `json:"course_completed"`
	ActiveLessonID         *uuid.UUID          `json:"active_lesson_id"`
	ActiveLessonPercentage int                 `json:"active_lesson_percentage"`
}

type ChallengeOptionView struct {
	OptionID uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	ImageSrc *string   `json:"image_src,omitempty"`
	AudioSrc *string   `json:"audio_src,omitempty"`
}

type ChallengeView struct {
	ChallengeID uuid.UUID             `json:"id"`
	Type        ChallengeType         `json:"type"`
	Question    string                `json:"question"`
	Order       int                   `json:"order"`
	Completed   bool                  `json:"completed"`
	Options     []ChallengeOptionView `json:"options"`
}

// LessonView is a lesson ready to be played. Correct flags are not exposed.
type LessonView struct {
	LessonID   uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Locked     bool            `json:"locked"`
	Completed  bool            `json:"completed"`
	Percentage int             `json:"percentage"`
	Challenges []ChallengeView `json:"challenges"`
}

// LeaderboardEntry is one ranked row; ties are unordered.
type LeaderboardEntry struct {
	UserID      string `json:"user_id" gorm:"column:user_id"`
	DisplayName string `json:"display_name" gorm:"column:user_name"`
	Avatar      string `json:"avatar" gorm:"column:user_image_src"`
	TotalPoints int    `json:"total_points" gorm:"column:total_points"`
}
