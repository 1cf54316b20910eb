// internal/service/unlock_test.go
package service

import (
	"testing"

	"lingo_progress/internal/config"
	"lingo_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildUnits returns units in the given shape with their challenge ids in play order.
func buildUnits(shape ...[]int) ([]model.Unit, [][]uuid.UUID) {
	var units []model.Unit
	var lessonChallenges [][]uuid.UUID
	for ui, lessons := range shape {
		unit := model.Unit{UnitID: uuid.New(), Order: ui + 1}
		for li, size := range lessons {
			lesson := model.Lesson{LessonID: uuid.New(), Order: li + 1}
			var ids []uuid.UUID
			for ci := 0; ci < size; ci++ {
				id := uuid.New()
				lesson.Challenges = append(lesson.Challenges, model.Challenge{ChallengeID: id, Order: ci + 1})
				ids = append(ids, id)
			}
			unit.Lessons = append(unit.Lessons, lesson)
			lessonChallenges = append(lessonChallenges, ids)
		}
		units = append(units, unit)
	}
	return units, lessonChallenges
}

func completedSet(ids ...[]uuid.UUID) map[uuid.UUID]bool {
	set := map[uuid.UUID]bool{}
	for _, group := range ids {
		for _, id := range group {
			set[id] = true
		}
	}
	return set
}

func flattenLessons(schedule *model.CourseSchedule) []model.LessonState {
	var lessons []model.LessonState
	for _, u := range schedule.Units {
		lessons = append(lessons, u.Lessons...)
	}
	return lessons
}

func TestEvaluateCourse(t *testing.T) {
	game := config.DefaultGameConfig()
	courseID := uuid.New()

	t.Run("empty course", func(t *testing.T) {
		schedule := EvaluateCourse(courseID, nil, nil, game)
		assert.Empty(t, schedule.Units)
		assert.False(t, schedule.CourseCompleted)
		assert.Nil(t, schedule.ActiveLessonID)
	})

	t.Run("units without lessons", func(t *testing.T) {
		units, _ := buildUnits([]int{}, []int{})
		schedule := EvaluateCourse(courseID, units, nil, game)
		require.Len(t, schedule.Units, 2)
		assert.Empty(t, schedule.Units[0].Lessons)
		assert.False(t, schedule.CourseCompleted)
		assert.Nil(t, schedule.ActiveLessonID)
	})

	t.Run("only the first lesson is open for a new user", func(t *testing.T) {
		units, _ := buildUnits([]int{3, 3}, []int{2})
		schedule := EvaluateCourse(courseID, units, map[uuid.UUID]bool{}, game)

		lessons := flattenLessons(schedule)
		require.Len(t, lessons, 3)
		assert.False(t, lessons[0].Locked)
		assert.True(t, lessons[1].Locked)
		assert.True(t, lessons[2].Locked)
		assert.Equal(t, units[0].Lessons[0].LessonID, *schedule.ActiveLessonID)
		assert.Equal(t, 0, schedule.ActiveLessonPercentage)
	})

	t.Run("completion unlocks across unit boundaries", func(t *testing.T) {
		units, ids := buildUnits([]int{3, 2}, []int{2})
		schedule := EvaluateCourse(courseID, units, completedSet(ids[0], ids[1]), game)

		assert.True(t, schedule.Units[0].Completed)
		assert.False(t, schedule.Units[1].Lessons[0].Locked)
		assert.Equal(t, units[1].Lessons[0].LessonID, *schedule.ActiveLessonID)
		assert.False(t, schedule.CourseCompleted)
	})

	t.Run("partial progress sets the percentage", func(t *testing.T) {
		units, ids := buildUnits([]int{4})
		schedule := EvaluateCourse(courseID, units, completedSet(ids[0][:1]), game)
		assert.Equal(t, 25, schedule.ActiveLessonPercentage)
		assert.Equal(t, 1, schedule.Units[0].Lessons[0].CompletedChallenges)
	})

	t.Run("lesson without challenges is complete", func(t *testing.T) {
		units, _ := buildUnits([]int{0, 2})
		schedule := EvaluateCourse(courseID, units, nil, game)
		lessons := flattenLessons(schedule)
		assert.True(t, lessons[0].Completed)
		assert.False(t, lessons[1].Locked)
	})

	t.Run("quota caps the requirement", func(t *testing.T) {
		units, ids := buildUnits([]int{12, 1})
		schedule := EvaluateCourse(courseID, units, completedSet(ids[0][:10]), game)
		lessons := flattenLessons(schedule)
		assert.True(t, lessons[0].Completed)
		assert.False(t, lessons[1].Locked)
	})

	t.Run("a gap keeps later lessons locked", func(t *testing.T) {
		units, ids := buildUnits([]int{2, 2, 2})
		schedule := EvaluateCourse(courseID, units, completedSet(ids[1]), game)
		lessons := flattenLessons(schedule)
		assert.False(t, lessons[0].Locked)
		assert.False(t, lessons[0].Completed)
		assert.True(t, lessons[1].Locked)
		assert.True(t, lessons[1].Completed)
		assert.False(t, lessons[2].Locked)
		assert.Equal(t, units[0].Lessons[0].LessonID, *schedule.ActiveLessonID)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		units, ids := buildUnits([]int{1, 1}, []int{1})
		reversed := []model.Unit{units[1], units[0]}
		reversed[1].Lessons = []model.Lesson{units[0].Lessons[1], units[0].Lessons[0]}

		schedule := EvaluateCourse(courseID, reversed, completedSet(ids[0]), game)
		assert.Equal(t, units[0].UnitID, schedule.Units[0].UnitID)
		assert.Equal(t, units[0].Lessons[1].LessonID, *schedule.ActiveLessonID)
	})

	t.Run("everything done completes the course", func(t *testing.T) {
		units, ids := buildUnits([]int{1, 2}, []int{3})
		schedule := EvaluateCourse(courseID, units, completedSet(ids...), game)
		assert.True(t, schedule.CourseCompleted)
		assert.Nil(t, schedule.ActiveLessonID)
	})
}

// Adding completions one at a time must never lock a lesson that was unlocked.
func TestEvaluateCourse_UnlockIsMonotonic(t *testing.T) {
	game := config.DefaultGameConfig()
	units, ids := buildUnits([]int{2, 3}, []int{1, 2})

	completed := map[uuid.UUID]bool{}
	previous := EvaluateCourse(uuid.Nil, units, completed, game)
	for _, lesson := range ids {
		for _, id := range lesson {
			completed[id] = true
			current := EvaluateCourse(uuid.Nil, units, completed, game)

			before := flattenLessons(previous)
			after := flattenLessons(current)
			for i := range before {
				if !before[i].Locked {
					assert.False(t, after[i].Locked, "lesson %d was locked again", i)
				}
				if before[i].Completed {
					assert.True(t, after[i].Completed, "lesson %d lost completion", i)
				}
			}
			previous = current
		}
	}
	assert.True(t, previous.CourseCompleted)
}

func TestFindLessonState(t *testing.T) {
	units, _ := buildUnits([]int{1}, []int{1})
	schedule := EvaluateCourse(uuid.New(), units, nil, config.DefaultGameConfig())

	state, ok := FindLessonState(schedule, units[1].Lessons[0].LessonID)
	require.True(t, ok)
	assert.True(t, state.Locked)

	_, ok = FindLessonState(schedule, uuid.New())
	assert.False(t, ok)
}
