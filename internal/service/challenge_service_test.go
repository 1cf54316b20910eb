// internal/service/challenge_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"lingo_progress/internal/model"
	"lingo_progress/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSubmitAnswer_TenCorrectAnswersCompleteLesson(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Spanish", []int{10})
	engine.selectCourse(t, "user-a", course.id)

	lesson := course.lessons[0]
	for i, c := range lesson.challenges {
		result, err := engine.challenge.SubmitAnswer(ctx, "user-a", c.id, c.correct)
		require.NoError(t, err)
		assert.True(t, result.Correct)
		assert.False(t, result.Practice)
		assert.Equal(t, 5, result.Hearts)
		if i < len(lesson.challenges)-1 {
			assert.Equal(t, (i+1)*10, result.Points)
			assert.False(t, result.LessonCompleted)
		}
	}

	assert.Equal(t, 120, engine.points(t, "user-a", course.id))

	schedule, err := engine.progress.GetUnitsWithLockState(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, schedule.Units[0].Lessons[0].Completed)
	assert.True(t, schedule.CourseCompleted)
	assert.Nil(t, schedule.ActiveLessonID)
}

func TestSubmitAnswer_LessonBonus(t *testing.T) {
	tests := []struct {
		name       string
		challenges int
		answered   int
		wantPoints int
		wantDone   bool
	}{
		{name: "short lesson needs every challenge", challenges: 3, answered: 3, wantPoints: 50, wantDone: true},
		{name: "short lesson incomplete", challenges: 3, answered: 2, wantPoints: 20, wantDone: false},
		{name: "long lesson completes at quota", challenges: 12, answered: 10, wantPoints: 120, wantDone: true},
		{name: "bonus is granted once", challenges: 12, answered: 12, wantPoints: 140, wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			db := setupTestDB(t)
			engine := newTestEngine(t, db)
			course := seedCourse(t, db, "French", []int{tt.challenges, 1})
			engine.selectCourse(t, "user", course.id)

			var last *model.SubmitAnswerResult
			for _, c := range course.lessons[0].challenges[:tt.answered] {
				var err error
				last, err = engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantPoints, last.Points)
			assert.Equal(t, tt.wantDone, last.LessonCompleted)
			assert.False(t, last.CourseCompleted)
		})
	}
}

func TestSubmitAnswer_WrongAnswerWithLastHeart(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "German", []int{5})
	engine.selectCourse(t, "user-b", course.id)
	engine.setHearts(t, "user-b", 1)

	first := course.lessons[0].challenges[0]
	result, err := engine.challenge.SubmitAnswer(ctx, "user-b", first.id, first.wrong)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.Hearts)
	assert.Equal(t, 0, result.Points)
	assert.Zero(t, engine.countRows(t, &model.ChallengeProgress{}, "user_id = ?", "user-b"))

	// Any first attempt is refused without hearts, right or wrong.
	for _, optionID := range []uuid.UUID{course.lessons[0].challenges[1].wrong, course.lessons[0].challenges[1].correct} {
		_, err = engine.challenge.SubmitAnswer(ctx, "user-b", course.lessons[0].challenges[1].id, optionID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInsufficientHearts))

		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INSUFFICIENT_HEARTS", appErr.Detail.Code)
	}

	assert.Equal(t, 0, engine.hearts(t, "user-b"))
	assert.Equal(t, 0, engine.points(t, "user-b", course.id))
	assert.Zero(t, engine.countRows(t, &model.ChallengeProgress{}, "user_id = ?", "user-b"))
}

func TestSubmitAnswer_WrongFirstAttemptLeavesChallengeOpen(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Italian", []int{3})
	engine.selectCourse(t, "user", course.id)

	c := course.lessons[0].challenges[0]
	_, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.wrong)
	require.NoError(t, err)

	result, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
	require.NoError(t, err)
	assert.False(t, result.Practice)
	assert.Equal(t, 4, result.Hearts)
	assert.Equal(t, 10, result.Points)
}

func TestSubmitAnswer_Practice(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Japanese", []int{2})
	engine.selectCourse(t, "user", course.id)

	c := course.lessons[0].challenges[0]
	_, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
	require.NoError(t, err)

	t.Run("correct replay restores a heart", func(t *testing.T) {
		engine.setHearts(t, "user", 3)
		result, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
		require.NoError(t, err)
		assert.True(t, result.Practice)
		assert.Equal(t, 4, result.Hearts)
		assert.Equal(t, 20, result.Points)
	})

	t.Run("hearts never exceed the maximum", func(t *testing.T) {
		engine.setHearts(t, "user", 5)
		result, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Hearts)
		assert.Equal(t, 30, result.Points)
	})

	t.Run("allowed without hearts", func(t *testing.T) {
		engine.setHearts(t, "user", 0)
		result, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Hearts)
		assert.Equal(t, 40, result.Points)
	})

	t.Run("wrong replay changes nothing", func(t *testing.T) {
		engine.setHearts(t, "user", 2)
		result, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.wrong)
		require.NoError(t, err)
		assert.True(t, result.Practice)
		assert.False(t, result.Correct)
		assert.Equal(t, 2, result.Hearts)
		assert.Equal(t, 40, result.Points)
	})

	assert.Equal(t, int64(1), engine.countRows(t, &model.ChallengeProgress{}, "user_id = ? AND challenge_id = ?", "user", c.id))
}

func TestSubmitAnswer_PracticeOnCompletedLesson(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Korean", []int{3, 1})
	engine.selectCourse(t, "user", course.id)

	lesson := course.lessons[0]
	for _, c := range lesson.challenges {
		_, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
		require.NoError(t, err)
	}
	require.Equal(t, 50, engine.points(t, "user", course.id))
	engine.setHearts(t, "user", 4)

	// Replaying the challenge that completed the lesson must not grant the bonus again.
	last := lesson.challenges[len(lesson.challenges)-1]
	result, err := engine.challenge.SubmitAnswer(ctx, "user", last.id, last.correct)
	require.NoError(t, err)
	assert.True(t, result.Practice)
	assert.True(t, result.LessonCompleted)
	assert.Equal(t, 60, result.Points)
	assert.Equal(t, 5, result.Hearts)

	result, err = engine.challenge.SubmitAnswer(ctx, "user", lesson.challenges[0].id, lesson.challenges[0].correct)
	require.NoError(t, err)
	assert.True(t, result.LessonCompleted)
	assert.Equal(t, 70, result.Points)

	assert.Equal(t, 70, engine.points(t, "user", course.id))
	assert.Equal(t, int64(3), engine.countRows(t, &model.ChallengeProgress{}, "user_id = ?", "user"))
}

func TestUserProgress_HeartsCannotGoNegative(t *testing.T) {
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Dutch", []int{1})
	engine.selectCourse(t, "user", course.id)

	err := db.Model(&model.UserProgress{}).Where("user_id = ?", "user").Update("hearts", -1).Error
	assert.Error(t, err)
	assert.Equal(t, 5, engine.hearts(t, "user"))
}

func TestSubmitAnswer_Rejections(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Korean", []int{2})
	other := seedCourse(t, db, "Dutch", []int{1})
	engine.selectCourse(t, "user", course.id)

	c := course.lessons[0].challenges[0]
	tests := []struct {
		name        string
		userID      string
		challengeID uuid.UUID
		optionID    uuid.UUID
		wantErr     error
		wantCode    string
	}{
		{name: "no user", userID: "", challengeID: c.id, optionID: c.correct, wantErr: model.ErrUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "no progress", userID: "stranger", challengeID: c.id, optionID: c.correct, wantErr: model.ErrNotFound, wantCode: "USER_PROGRESS_NOT_FOUND"},
		{name: "unknown challenge", userID: "user", challengeID: uuid.New(), optionID: c.correct, wantErr: model.ErrNotFound, wantCode: "CHALLENGE_NOT_FOUND"},
		{name: "challenge of another course", userID: "user", challengeID: other.lessons[0].challenges[0].id, optionID: other.lessons[0].challenges[0].correct, wantErr: model.ErrNotFound, wantCode: "CHALLENGE_NOT_FOUND"},
		{name: "option of another challenge", userID: "user", challengeID: c.id, optionID: course.lessons[0].challenges[1].correct, wantErr: model.ErrNotFound, wantCode: "OPTION_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.challenge.SubmitAnswer(ctx, tt.userID, tt.challengeID, tt.optionID)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)

			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Detail.Code)
		})
	}

	assert.Equal(t, 5, engine.hearts(t, "user"))
	assert.Zero(t, engine.countRows(t, &model.CourseProgress{}, "user_id = ?", "user"))
}

func TestSubmitAnswer_ConcurrentFirstAnswers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Portuguese", []int{4})
	engine.selectCourse(t, "user-d", course.id)

	challenges := course.lessons[0].challenges[:2]
	var wg sync.WaitGroup
	errs := make([]error, len(challenges))
	for i, c := range challenges {
		wg.Add(1)
		go func(i int, c challengeFixture) {
			defer wg.Done()
			_, errs[i] = engine.challenge.SubmitAnswer(ctx, "user-d", c.id, c.correct)
		}(i, c)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), engine.countRows(t, &model.CourseProgress{}, "user_id = ? AND course_id = ?", "user-d", course.id))
	assert.Equal(t, 20, engine.points(t, "user-d", course.id))
}

func TestSubmitAnswer_ConcurrentSameChallenge(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Swedish", []int{3})
	engine.selectCourse(t, "user", course.id)

	c := course.lessons[0].challenges[0]
	var wg sync.WaitGroup
	results := make([]*model.SubmitAnswerResult, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := engine.challenge.SubmitAnswer(ctx, "user", c.id, c.correct)
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	practices := 0
	for _, r := range results {
		require.NotNil(t, r)
		if r.Practice {
			practices++
		}
	}
	assert.Equal(t, 1, practices)
	assert.Equal(t, int64(1), engine.countRows(t, &model.ChallengeProgress{}, "user_id = ? AND challenge_id = ?", "user", c.id))
	assert.Equal(t, 20, engine.points(t, "user", course.id))
}

// failingCourseRepo fails AddPoints after the completion record was written.
type failingCourseRepo struct {
	repository.CourseProgressRepository
}

func (f failingCourseRepo) AddPoints(ctx context.Context, db *gorm.DB, userID string, courseID uuid.UUID, delta int) error {
	return errors.New("disk full")
}

func TestSubmitAnswer_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	engine := newTestEngine(t, db)
	course := seedCourse(t, db, "Greek", []int{2})
	engine.selectCourse(t, "user", course.id)

	svc := NewChallengeService(db,
		repository.NewGormUserProgressRepository(),
		failingCourseRepo{repository.NewGormCourseProgressRepository()},
		repository.NewGormChallengeProgressRepository(),
		repository.NewGormContentRepository(),
		engine.game, nil)

	c := course.lessons[0].challenges[0]
	_, err := svc.SubmitAnswer(ctx, "user", c.id, c.correct)
	require.Error(t, err)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	assert.Zero(t, engine.countRows(t, &model.ChallengeProgress{}, "user_id = ?", "user"))
	assert.Zero(t, engine.countRows(t, &model.CourseProgress{}, "user_id = ?", "user"))
}
