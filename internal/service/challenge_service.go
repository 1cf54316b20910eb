//go:generate mockery --name ChallengeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"lingo_progress/internal/config"
	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChallengeService resolves answer submissions.
type ChallengeService interface {
	SubmitAnswer(ctx context.Context, userID string, challengeID, optionID uuid.UUID) (*model.SubmitAnswerResult, error)
}

// PointsObserver is told about committed point changes.
type PointsObserver interface {
	PointsChanged(ctx context.Context, userID string)
}

type challengeService struct {
	db            *gorm.DB
	userRepo      repository.UserProgressRepository
	courseRepo    repository.CourseProgressRepository
	challengeRepo repository.ChallengeProgressRepository
	contentRepo   repository.ContentRepository
	game          config.GameConfig
	observer      PointsObserver
}

func NewChallengeService(
	db *gorm.DB,
	userRepo repository.UserProgressRepository,
	courseRepo repository.CourseProgressRepository,
	challengeRepo repository.ChallengeProgressRepository,
	contentRepo repository.ContentRepository,
	game config.GameConfig,
	observer PointsObserver,
) ChallengeService {
	return &challengeService{
		db:            db,
		userRepo:      userRepo,
		courseRepo:    courseRepo,
		challengeRepo: challengeRepo,
		contentRepo:   contentRepo,
		game:          game,
		observer:      observer,
	}
}

// SubmitAnswer applies one submission inside a single transaction. A submission on a
// challenge the user has already answered is a practice replay: it never costs a
// heart, and a correct replay restores one heart and grants the base reward.
// A first attempt needs at least one heart, whatever the answer.
func (s *challengeService) SubmitAnswer(ctx context.Context, userID string, challengeID, optionID uuid.UUID) (*model.SubmitAnswerResult, error) {
	if userID == "" {
		return nil, unauthorizedError()
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID, "challenge_id", challengeID.String())

	var result *model.SubmitAnswerResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The row lock keeps the hearts read below current until commit.
		progress, err := s.userRepo.FindByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return loadError(err, "USER_PROGRESS_NOT_FOUND", "Select a course first.")
		}
		if progress.ActiveCourseID == nil {
			return model.NewAppError("NO_ACTIVE_COURSE", "Select a course first.", "", model.ErrNotFound)
		}
		courseID := *progress.ActiveCourseID

		challenge, err := s.contentRepo.FindChallengeWithOptions(ctx, tx, challengeID)
		if err != nil {
			return loadError(err, "CHALLENGE_NOT_FOUND", "The challenge does not exist.")
		}
		if challenge.Lesson == nil || challenge.Lesson.Unit == nil || challenge.Lesson.Unit.CourseID != courseID {
			logger.Warn("Challenge does not belong to the active course", "course_id", courseID.String())
			return model.NewAppError("CHALLENGE_NOT_FOUND", "The challenge does not belong to the active course.", "challenge_id", model.ErrNotFound)
		}
		option, ok := challenge.FindOption(optionID)
		if !ok {
			return model.NewAppError("OPTION_NOT_FOUND", "The option does not belong to the challenge.", "option_id", model.ErrNotFound)
		}
		if challenge.CorrectOptionID() == uuid.Nil {
			logger.Warn("Challenge has no correct option")
		}
		correct := option.Correct

		existing, err := s.challengeRepo.Find(ctx, tx, userID, challengeID)
		practice := true
		if errors.Is(err, model.ErrNotFound) {
			practice = false
		} else if err != nil {
			return internalError(err)
		}

		if !practice && progress.Hearts <= 0 {
			logger.Info("Submission rejected: no hearts left")
			return insufficientHeartsError()
		}

		if _, err := s.courseRepo.EnsureExists(ctx, tx, userID, courseID); err != nil {
			return internalError(err)
		}

		switch {
		case correct && !practice:
			inserted, err := s.challengeRepo.CreateCompleted(ctx, tx, userID, challengeID)
			if err != nil {
				return internalError(err)
			}
			if inserted {
				if err := s.applyFirstCorrect(ctx, tx, userID, courseID, challenge.LessonID); err != nil {
					return err
				}
				break
			}
			// A concurrent submission recorded the first attempt.
			logger.Info("Challenge progress already recorded, resolving as practice")
			practice = true
			if err := s.applyPracticeCorrect(ctx, tx, userID, courseID, nil); err != nil {
				return err
			}
		case correct && practice:
			if err := s.applyPracticeCorrect(ctx, tx, userID, courseID, existing); err != nil {
				return err
			}
		case !correct && !practice:
			decremented, err := s.userRepo.DecrementHeart(ctx, tx, userID)
			if err != nil {
				return internalError(err)
			}
			if !decremented {
				return insufficientHeartsError()
			}
		}

		result, err = s.snapshot(ctx, tx, userID, courseID, challenge.LessonID)
		if err != nil {
			return err
		}
		result.Correct = correct
		result.Practice = practice
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	if result.Correct && s.observer != nil {
		s.observer.PointsChanged(ctx, userID)
	}
	logger.Info("Answer submitted",
		"correct", result.Correct,
		"practice", result.Practice,
		"hearts", result.Hearts,
		"points", result.Points,
		"lesson_completed", result.LessonCompleted,
	)
	return result, nil
}

// applyFirstCorrect grants the base reward and, when this completion fills the
// lesson quota exactly, the lesson bonus. Points are added before counting so the
// course progress row lock orders concurrent completions in the same lesson.
func (s *challengeService) applyFirstCorrect(ctx context.Context, tx *gorm.DB, userID string, courseID, lessonID uuid.UUID) error {
	if err := s.courseRepo.AddPoints(ctx, tx, userID, courseID, s.game.BaseReward); err != nil {
		return internalError(err)
	}

	done, err := s.challengeRepo.CountCompletedInLesson(ctx, tx, userID, lessonID)
	if err != nil {
		return internalError(err)
	}
	total, err := s.contentRepo.CountChallengesInLesson(ctx, tx, lessonID)
	if err != nil {
		return internalError(err)
	}
	if int(done) == s.game.LessonQuota(int(total)) {
		middleware.GetLogger(ctx).Info("Lesson completed", "user_id", userID, "lesson_id", lessonID.String())
		if err := s.courseRepo.AddPoints(ctx, tx, userID, courseID, s.game.LessonBonus); err != nil {
			return internalError(err)
		}
	}
	return nil
}

func (s *challengeService) applyPracticeCorrect(ctx context.Context, tx *gorm.DB, userID string, courseID uuid.UUID, existing *model.ChallengeProgress) error {
	if existing != nil && !existing.Completed {
		if err := s.challengeRepo.MarkCompleted(ctx, tx, existing.ChallengeProgressID); err != nil {
			return internalError(err)
		}
	}
	if _, err := s.userRepo.RestoreHeart(ctx, tx, userID, s.game.MaxHearts); err != nil {
		return internalError(err)
	}
	if err := s.courseRepo.AddPoints(ctx, tx, userID, courseID, s.game.BaseReward); err != nil {
		return internalError(err)
	}
	return nil
}

// snapshot reads the post-submission state inside the same transaction.
func (s *challengeService) snapshot(ctx context.Context, tx *gorm.DB, userID string, courseID, lessonID uuid.UUID) (*model.SubmitAnswerResult, error) {
	progress, err := s.userRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		return nil, internalError(err)
	}
	courseProgress, err := s.courseRepo.Find(ctx, tx, userID, courseID)
	if err != nil {
		return nil, internalError(err)
	}
	units, err := s.contentRepo.ListUnitsWithLessons(ctx, tx, courseID)
	if err != nil {
		return nil, internalError(err)
	}
	completedIDs, err := s.challengeRepo.ListCompletedChallengeIDs(ctx, tx, userID, courseID)
	if err != nil {
		return nil, internalError(err)
	}

	schedule := EvaluateCourse(courseID, units, toSet(completedIDs), s.game)
	lessonState, _ := FindLessonState(schedule, lessonID)

	return &model.SubmitAnswerResult{
		Hearts:          progress.Hearts,
		Points:          courseProgress.Points,
		LessonCompleted: lessonState.Completed,
		CourseCompleted: schedule.CourseCompleted,
	}, nil
}
