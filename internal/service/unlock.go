package service

import (
	"slices"

	"lingo_progress/internal/config"
	"lingo_progress/internal/model"

	"github.com/google/uuid"
)

// EvaluateCourse derives completion and lock state for every lesson of a course from
// the set of completed challenge ids. Units and lessons are walked in sort order with
// a running "previous lesson completed" flag seeded true, so the first lesson of the
// course is always unlocked. A lesson needs game.LessonQuota(total) completed
// challenges, so a lesson without challenges is complete.
//
// Nothing here is persisted, so the result can never drift from the completion records.
func EvaluateCourse(courseID uuid.UUID, units []model.Unit, completed map[uuid.UUID]bool, game config.GameConfig) *model.CourseSchedule {
	schedule := &model.CourseSchedule{
		CourseID: courseID,
		Units:    make([]model.UnitWithLockState, 0, len(units)),
	}

	sortedUnits := slices.Clone(units)
	slices.SortStableFunc(sortedUnits, func(a, b model.Unit) int { return a.Order - b.Order })

	previousCompleted := true
	courseCompleted := true
	hasLessons := false

	for _, unit := range sortedUnits {
		lessons := slices.Clone(unit.Lessons)
		slices.SortStableFunc(lessons, func(a, b model.Lesson) int { return a.Order - b.Order })

		unitState := model.UnitWithLockState{
			UnitID:      unit.UnitID,
			Title:       unit.Title,
			Description: unit.Description,
			Order:       unit.Order,
			Completed:   true,
			Lessons:     make([]model.LessonState, 0, len(lessons)),
		}

		for _, lesson := range lessons {
			hasLessons = true
			done := countCompleted(lesson.Challenges, completed)
			need := game.LessonQuota(len(lesson.Challenges))

			state := model.LessonState{
				LessonID:            lesson.LessonID,
				Title:               lesson.Title,
				Order:               lesson.Order,
				TotalChallenges:     len(lesson.Challenges),
				CompletedChallenges: done,
				Completed:           done >= need,
				Locked:              !previousCompleted,
			}
			previousCompleted = state.Completed

			if !state.Completed {
				unitState.Completed = false
				if schedule.ActiveLessonID == nil && !state.Locked {
					id := lesson.LessonID
					schedule.ActiveLessonID = &id
					schedule.ActiveLessonPercentage = lessonPercentage(done, need)
				}
			}
			unitState.Lessons = append(unitState.Lessons, state)
		}

		if !unitState.Completed {
			courseCompleted = false
		}
		schedule.Units = append(schedule.Units, unitState)
	}

	// A course without lessons has nothing to complete.
	schedule.CourseCompleted = courseCompleted && hasLessons
	return schedule
}

// FindLessonState looks up one lesson in an evaluated schedule.
func FindLessonState(schedule *model.CourseSchedule, lessonID uuid.UUID) (model.LessonState, bool) {
	for _, unit := range schedule.Units {
		for _, lesson := range unit.Lessons {
			if lesson.LessonID == lessonID {
				return lesson, true
			}
		}
	}
	return model.LessonState{}, false
}

func countCompleted(challenges []model.Challenge, completed map[uuid.UUID]bool) int {
	n := 0
	for _, c := range challenges {
		if completed[c.ChallengeID] {
			n++
		}
	}
	return n
}

func lessonPercentage(done, need int) int {
	if need == 0 || done >= need {
		return 100
	}
	return done * 100 / need
}

func toSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
