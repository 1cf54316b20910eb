// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"lingo_progress/internal/config"
	"lingo_progress/internal/model"
	"lingo_progress/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database. One connection serializes
// transactions the way the sqlite driver does in NewDB.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

type challengeFixture struct {
	id      uuid.UUID
	correct uuid.UUID
	wrong   uuid.UUID
}

type lessonFixture struct {
	id         uuid.UUID
	challenges []challengeFixture
}

type courseFixture struct {
	id      uuid.UUID
	lessons []lessonFixture // every lesson of the course, in play order
}

// seedCourse creates a course with one unit per entry of units; each entry lists the
// challenge count of that unit's lessons.
func seedCourse(t *testing.T, db *gorm.DB, title string, units ...[]int) courseFixture {
	t.Helper()
	fixture := courseFixture{id: uuid.New()}
	course := model.Course{CourseID: fixture.id, Title: title}

	for ui, lessonSizes := range units {
		unit := model.Unit{UnitID: uuid.New(), Title: fmt.Sprintf("Unit %d", ui+1), Order: ui + 1}
		for li, size := range lessonSizes {
			lesson := model.Lesson{LessonID: uuid.New(), Title: fmt.Sprintf("Lesson %d.%d", ui+1, li+1), Order: li + 1}
			lf := lessonFixture{id: lesson.LessonID}
			for ci := 0; ci < size; ci++ {
				cf := challengeFixture{id: uuid.New(), correct: uuid.New(), wrong: uuid.New()}
				lesson.Challenges = append(lesson.Challenges, model.Challenge{
					ChallengeID: cf.id,
					Type:        model.ChallengeTypeSelect,
					Question:    fmt.Sprintf("Question %d", ci+1),
					Order:       ci + 1,
					Options: []model.ChallengeOption{
						{OptionID: cf.correct, Text: "right", Correct: true},
						{OptionID: cf.wrong, Text: "wrong"},
					},
				})
				lf.challenges = append(lf.challenges, cf)
			}
			unit.Lessons = append(unit.Lessons, lesson)
			fixture.lessons = append(fixture.lessons, lf)
		}
		course.Units = append(course.Units, unit)
	}

	require.NoError(t, repository.NewGormContentRepository().CreateCourse(context.Background(), db, &course))
	return fixture
}

type testEngine struct {
	db          *gorm.DB
	game        config.GameConfig
	progress    ProgressService
	challenge   ChallengeService
	economy     EconomyService
	leaderboard LeaderboardService
}

func newTestEngine(t *testing.T, db *gorm.DB) *testEngine {
	t.Helper()
	game := config.DefaultGameConfig()
	userRepo := repository.NewGormUserProgressRepository()
	courseRepo := repository.NewGormCourseProgressRepository()
	challengeRepo := repository.NewGormChallengeProgressRepository()
	contentRepo := repository.NewGormContentRepository()

	leaderboard := NewLeaderboardService(db, userRepo, nil, 0, game)
	return &testEngine{
		db:          db,
		game:        game,
		progress:    NewProgressService(db, userRepo, courseRepo, challengeRepo, contentRepo, game),
		challenge:   NewChallengeService(db, userRepo, courseRepo, challengeRepo, contentRepo, game, leaderboard),
		economy:     NewEconomyService(db, userRepo, courseRepo, game, leaderboard),
		leaderboard: leaderboard,
	}
}

func (e *testEngine) selectCourse(t *testing.T, userID string, courseID uuid.UUID) {
	t.Helper()
	_, err := e.progress.SelectCourse(context.Background(), userID, &model.SelectCourseRequest{CourseID: courseID, UserName: userID})
	require.NoError(t, err)
}

func (e *testEngine) setHearts(t *testing.T, userID string, hearts int) {
	t.Helper()
	err := e.db.Model(&model.UserProgress{}).Where("user_id = ?", userID).Update("hearts", hearts).Error
	require.NoError(t, err)
}

func (e *testEngine) setPoints(t *testing.T, userID string, courseID uuid.UUID, points int) {
	t.Helper()
	ctx := context.Background()
	_, err := repository.NewGormCourseProgressRepository().EnsureExists(ctx, e.db, userID, courseID)
	require.NoError(t, err)
	err = e.db.Model(&model.CourseProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Update("points", points).Error
	require.NoError(t, err)
}

func (e *testEngine) hearts(t *testing.T, userID string) int {
	t.Helper()
	var progress model.UserProgress
	require.NoError(t, e.db.Where("user_id = ?", userID).First(&progress).Error)
	return progress.Hearts
}

// points returns 0 when the user has no progress row for the course.
func (e *testEngine) points(t *testing.T, userID string, courseID uuid.UUID) int {
	t.Helper()
	var rows []model.CourseProgress
	require.NoError(t, e.db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&rows).Error)
	require.LessOrEqual(t, len(rows), 1)
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Points
}

func (e *testEngine) countRows(t *testing.T, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(value).Where(query, args...).Count(&n).Error)
	return n
}
