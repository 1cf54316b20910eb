//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"database/sql"

	"lingo_progress/internal/config"
	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ProgressService serves the read side of the engine and course selection.
type ProgressService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	SelectCourse(ctx context.Context, userID string, req *model.SelectCourseRequest) (*model.UserProgress, error)
	GetProgress(ctx context.Context, userID string) (*model.ProgressSummary, error)
	GetUnitsWithLockState(ctx context.Context, userID string) (*model.CourseSchedule, error)
	GetLesson(ctx context.Context, userID string, lessonID *uuid.UUID) (*model.LessonView, error)
}

// snapshotTxOptions gives the evaluator one consistent view of completion records.
var snapshotTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type progressService struct {
	db            *gorm.DB
	userRepo      repository.UserProgressRepository
	courseRepo    repository.CourseProgressRepository
	challengeRepo repository.ChallengeProgressRepository
	contentRepo   repository.ContentRepository
	game          config.GameConfig
}

func NewProgressService(
	db *gorm.DB,
	userRepo repository.UserProgressRepository,
	courseRepo repository.CourseProgressRepository,
	challengeRepo repository.ChallengeProgressRepository,
	contentRepo repository.ContentRepository,
	game config.GameConfig,
) ProgressService {
	return &progressService{
		db:            db,
		userRepo:      userRepo,
		courseRepo:    courseRepo,
		challengeRepo: challengeRepo,
		contentRepo:   contentRepo,
		game:          game,
	}
}

func (s *progressService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.contentRepo.ListCourses(ctx, s.db)
	if err != nil {
		return nil, internalError(err)
	}
	return courses, nil
}

// SelectCourse makes courseID the active course, creating the user's progress with
// full hearts on first use. Hearts of an existing user are kept.
func (s *progressService) SelectCourse(ctx context.Context, userID string, req *model.SelectCourseRequest) (*model.UserProgress, error) {
	if userID == "" {
		return nil, unauthorizedError()
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID, "course_id", req.CourseID.String())

	var progress *model.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.contentRepo.FindCourseByID(ctx, tx, req.CourseID); err != nil {
			return loadError(err, "COURSE_NOT_FOUND", "The course does not exist.")
		}

		courseID := req.CourseID
		upsert := &model.UserProgress{
			UserID:         userID,
			UserName:       req.UserName,
			UserImageSrc:   req.UserImageSrc,
			ActiveCourseID: &courseID,
			Hearts:         s.game.MaxHearts,
		}
		if err := s.userRepo.Upsert(ctx, tx, upsert); err != nil {
			return internalError(err)
		}

		var err error
		progress, err = s.userRepo.FindByUserID(ctx, tx, userID)
		if err != nil {
			return internalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	logger.Info("Active course selected")
	return progress, nil
}

// GetProgress loads the user row, then fans out the independent reads.
func (s *progressService) GetProgress(ctx context.Context, userID string) (*model.ProgressSummary, error) {
	if userID == "" {
		return nil, unauthorizedError()
	}

	progress, err := s.userRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, loadError(err, "USER_PROGRESS_NOT_FOUND", "Select a course first.")
	}

	summary := &model.ProgressSummary{
		UserID:          progress.UserID,
		UserName:        progress.UserName,
		UserImageSrc:    progress.UserImageSrc,
		ActiveCourse:    progress.ActiveCourse,
		ContentPackID:   model.DefaultContentPackID,
		Hearts:          progress.Hearts,
		PerCoursePoints: []model.CoursePoints{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.courseRepo.ListByUser(gctx, s.db, userID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			points := model.CoursePoints{CourseID: row.CourseID, Points: row.Points}
			if row.Course != nil {
				points.CourseTitle = row.Course.Title
			}
			summary.PerCoursePoints = append(summary.PerCoursePoints, points)
		}
		return nil
	})
	if progress.ActiveCourseID != nil {
		courseID := *progress.ActiveCourseID
		g.Go(func() error {
			packID, err := s.contentRepo.FindContentPackID(gctx, s.db, courseID)
			if err != nil {
				return err
			}
			summary.ContentPackID = packID
			return nil
		})
		g.Go(func() error {
			schedule, err := s.loadSchedule(gctx, userID, courseID)
			if err != nil {
				return err
			}
			summary.ActiveLessonID = schedule.ActiveLessonID
			summary.ActiveLessonPercentage = schedule.ActiveLessonPercentage
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, asAppError(err)
	}
	return summary, nil
}

// GetUnitsWithLockState evaluates the active course. A course without units yields
// an empty schedule, not an error.
func (s *progressService) GetUnitsWithLockState(ctx context.Context, userID string) (*model.CourseSchedule, error) {
	if userID == "" {
		return nil, unauthorizedError()
	}

	progress, err := s.userRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, loadError(err, "USER_PROGRESS_NOT_FOUND", "Select a course first.")
	}
	if progress.ActiveCourseID == nil {
		return nil, model.NewAppError("NO_ACTIVE_COURSE", "Select a course first.", "", model.ErrNotFound)
	}

	schedule, err := s.loadSchedule(ctx, userID, *progress.ActiveCourseID)
	if err != nil {
		return nil, asAppError(err)
	}
	if len(schedule.Units) == 0 {
		middleware.GetLogger(ctx).Warn("Active course has no units", "user_id", userID, "course_id", schedule.CourseID.String())
	}
	return schedule, nil
}

// GetLesson returns lessonID, or the active lesson when lessonID is nil, with the
// user's completion per challenge. Locked lessons are returned flagged, not refused.
func (s *progressService) GetLesson(ctx context.Context, userID string, lessonID *uuid.UUID) (*model.LessonView, error) {
	if userID == "" {
		return nil, unauthorizedError()
	}

	var view *model.LessonView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.userRepo.FindByUserID(ctx, tx, userID)
		if err != nil {
			return loadError(err, "USER_PROGRESS_NOT_FOUND", "Select a course first.")
		}
		if progress.ActiveCourseID == nil {
			return model.NewAppError("NO_ACTIVE_COURSE", "Select a course first.", "", model.ErrNotFound)
		}
		courseID := *progress.ActiveCourseID

		schedule, completed, err := s.evaluate(ctx, tx, userID, courseID)
		if err != nil {
			return err
		}

		targetID := lessonID
		if targetID == nil {
			targetID = schedule.ActiveLessonID
		}
		if targetID == nil {
			return model.NewAppError("NO_ACTIVE_LESSON", "Every lesson of the course is completed.", "", model.ErrNotFound)
		}

		state, ok := FindLessonState(schedule, *targetID)
		if !ok {
			return model.NewAppError("LESSON_NOT_FOUND", "The lesson does not belong to the active course.", "lesson_id", model.ErrNotFound)
		}
		lesson, err := s.contentRepo.FindLessonWithChallenges(ctx, tx, *targetID)
		if err != nil {
			return loadError(err, "LESSON_NOT_FOUND", "The lesson does not exist.")
		}

		view = buildLessonView(lesson, state, completed, s.game)
		return nil
	}, snapshotTxOptions)
	if err != nil {
		return nil, asAppError(err)
	}
	return view, nil
}

func (s *progressService) loadSchedule(ctx context.Context, userID string, courseID uuid.UUID) (*model.CourseSchedule, error) {
	var schedule *model.CourseSchedule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		schedule, _, err = s.evaluate(ctx, tx, userID, courseID)
		return err
	}, snapshotTxOptions)
	return schedule, err
}

// evaluate must run inside a snapshot transaction.
func (s *progressService) evaluate(ctx context.Context, tx *gorm.DB, userID string, courseID uuid.UUID) (*model.CourseSchedule, map[uuid.UUID]bool, error) {
	units, err := s.contentRepo.ListUnitsWithLessons(ctx, tx, courseID)
	if err != nil {
		return nil, nil, internalError(err)
	}
	ids, err := s.challengeRepo.ListCompletedChallengeIDs(ctx, tx, userID, courseID)
	if err != nil {
		return nil, nil, internalError(err)
	}
	completed := toSet(ids)
	return EvaluateCourse(courseID, units, completed, s.game), completed, nil
}

func buildLessonView(lesson *model.Lesson, state model.LessonState, completed map[uuid.UUID]bool, game config.GameConfig) *model.LessonView {
	view := &model.LessonView{
		LessonID:   lesson.LessonID,
		Title:      lesson.Title,
		Locked:     state.Locked,
		Completed:  state.Completed,
		Percentage: lessonPercentage(state.CompletedChallenges, game.LessonQuota(state.TotalChallenges)),
		Challenges: make([]model.ChallengeView, 0, len(lesson.Challenges)),
	}
	for _, c := range lesson.Challenges {
		cv := model.ChallengeView{
			ChallengeID: c.ChallengeID,
			Type:        c.Type,
			Question:    c.Question,
			Order:       c.Order,
			Completed:   completed[c.ChallengeID],
			Options:     make([]model.ChallengeOptionView, 0, len(c.Options)),
		}
		for _, o := range c.Options {
			cv.Options = append(cv.Options, model.ChallengeOptionView{
				OptionID: o.OptionID,
				Text:     o.Text,
				ImageSrc: o.ImageSrc,
				AudioSrc: o.AudioSrc,
			})
		}
		view.Challenges = append(view.Challenges, cv)
	}
	return view
}
