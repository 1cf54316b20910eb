// internal/model/content.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeType string

const (
	ChallengeTypeSelect ChallengeType = "SELECT"
	ChallengeTypeAssist ChallengeType = "ASSIST"
	ChallengeTypeFillIn ChallengeType = "FILL_IN"
)

// DefaultContentPackID is used for courses without an entry in course_content_packs.
const DefaultContentPackID = "default"

// Course is read-only content authored by admin tooling.
type Course struct {
	CourseID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	ImageSrc  string    `gorm:"not null;default:''" json:"image_src"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Units []Unit `gorm:"foreignKey:CourseID;references:CourseID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.CourseID == uuid.Nil {
		c.CourseID = uuid.New()
	}
	return nil
}

type Unit struct {
	UnitID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index:idx_unit_course_order,unique" json:"course_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null;default:''" json:"description"`
	Order       int       `gorm:"column:sort_order;not null;index:idx_unit_course_order,unique" json:"order"`

	Lessons []Lesson `gorm:"foreignKey:UnitID;references:UnitID" json:"-"`
}

func (Unit) TableName() string {
	return "units"
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.UnitID == uuid.Nil {
		u.UnitID = uuid.New()
	}
	return nil
}

type Lesson struct {
	LessonID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UnitID   uuid.UUID `gorm:"type:uuid;not null;index:idx_lesson_unit_order,unique" json:"unit_id"`
	Title    string    `gorm:"not null" json:"title"`
	Order    int       `gorm:"column:sort_order;not null;index:idx_lesson_unit_order,unique" json:"order"`

	Unit       *Unit       `gorm:"foreignKey:UnitID;references:UnitID" json:"-"`
	Challenges []Challenge `gorm:"foreignKey:LessonID;references:LessonID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.LessonID == uuid.Nil {
		l.LessonID = uuid.New()
	}
	return nil
}

type Challenge struct {
	ChallengeID uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_challenge_lesson_order,unique" json:"lesson_id"`
	Type        ChallengeType `gorm:"type:varchar(16);not null" json:"type"`
	Question    string        `gorm:"not null" json:"question"`
	Order       int           `gorm:"column:sort_order;not null;index:idx_challenge_lesson_order,unique" json:"order"`

	Lesson  *Lesson           `gorm:"foreignKey:LessonID;references:LessonID" json:"-"`
	Options []ChallengeOption `gorm:"foreignKey:ChallengeID;references:ChallengeID" json:"-"`
}

func (Challenge) TableName() string {
	return "challenges"
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ChallengeID == uuid.Nil {
		c.ChallengeID = uuid.New()
	}
	return nil
}

// CorrectOptionID returns the first option flagged correct, or uuid.Nil for malformed content.
func (c *Challenge) CorrectOptionID() uuid.UUID {
	for _, o := range c.Options {
		if o.Correct {
			return o.OptionID
		}
	}
	return uuid.Nil
}

// FindOption reports whether optionID belongs to this challenge.
func (c *Challenge) FindOption(optionID uuid.UUID) (*ChallengeOption, bool) {
	for i := range c.Options {
		if c.Options[i].OptionID == optionID {
			return &c.Options[i], true
		}
	}
	return nil, false
}

type ChallengeOption struct {
	OptionID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;not null;index" json:"challenge_id"`
	Text        string    `gorm:"not null" json:"text"`
	Correct     bool      `gorm:"not null;default:false" json:"correct"`
	ImageSrc    *string   `json:"image_src,omitempty"`
	AudioSrc    *string   `json:"audio_src,omitempty"`
}

func (ChallengeOption) TableName() string {
	return "challenge_options"
}

func (o *ChallengeOption) BeforeCreate(tx *gorm.DB) error {
	if o.OptionID == uuid.Nil {
		o.OptionID = uuid.New()
	}
	return nil
}

// CourseContentPack maps a course to the content pack (quests, avatars) it uses.
type CourseContentPack struct {
	CourseID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContentPackID string    `gorm:"not null"`
}

func (CourseContentPack) TableName() string {
	return "course_content_packs"
}
