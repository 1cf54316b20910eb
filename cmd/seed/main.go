// cmd/seed/main.go
// Seeds a demo course so a fresh database can be exercised end to end.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingo_progress/internal/config"
	"lingo_progress/internal/middleware"
	"lingo_progress/internal/model"
	"lingo_progress/internal/repository"
)

type seedChallenge struct {
	question string
	correct  string
	wrong    []string
}

type seedLesson struct {
	title      string
	challenges []seedChallenge
}

type seedUnit struct {
	title       string
	description string
	lessons     []seedLesson
}

var spanishUnits = []seedUnit{
	{
		title:       "Unit 1",
		description: "Learn the basics of Spanish",
		lessons: []seedLesson{
			{title: "Nouns", challenges: []seedChallenge{
				{question: `Which one of these is "the man"?`, correct: "el hombre", wrong: []string{"la mujer", "el robot"}},
				{question: `Which one of these is "the woman"?`, correct: "la mujer", wrong: []string{"el hombre", "el robot"}},
				{question: `Which one of these is "the robot"?`, correct: "el robot", wrong: []string{"la mujer", "el hombre"}},
			}},
			{title: "Verbs", challenges: []seedChallenge{
				{question: `"to eat"`, correct: "comer", wrong: []string{"beber", "dormir"}},
				{question: `"to drink"`, correct: "beber", wrong: []string{"comer", "correr"}},
			}},
		},
	},
	{
		title:       "Unit 2",
		description: "Everyday phrases",
		lessons: []seedLesson{
			{title: "Greetings", challenges: []seedChallenge{
				{question: `"good morning"`, correct: "buenos días", wrong: []string{"buenas noches", "adiós"}},
				{question: `"goodbye"`, correct: "adiós", wrong: []string{"hola", "gracias"}},
			}},
		},
	},
}

func main() {
	title := flag.String("title", "Spanish", "course title")
	pack := flag.String("content-pack", "es", "content pack id attached to the course")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("configs"); err != nil {
		logger.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg, logger)
	if err != nil {
		logger.Error("Error initializing database", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Error("Error migrating database", "error", err)
		os.Exit(1)
	}

	ctx := middleware.WithLogger(context.Background(), logger)
	course := buildCourse(*title, spanishUnits)
	contentRepo := repository.NewGormContentRepository()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := contentRepo.CreateCourse(ctx, tx, course); err != nil {
			return err
		}
		return contentRepo.SetContentPack(ctx, tx, course.CourseID, *pack)
	})
	if errors.Is(err, model.ErrConflict) {
		logger.Warn("Course content already exists, nothing seeded")
		return
	}
	if err != nil {
		logger.Error("Error seeding course", "error", err)
		os.Exit(1)
	}

	fmt.Printf("seeded course %q (%s)\n", course.Title, course.CourseID)
}

func buildCourse(title string, units []seedUnit) *model.Course {
	course := &model.Course{CourseID: uuid.New(), Title: title, ImageSrc: "/es.svg"}
	for ui, u := range units {
		unit := model.Unit{UnitID: uuid.New(), CourseID: course.CourseID, Title: u.title, Description: u.description, Order: ui + 1}
		for li, l := range u.lessons {
			lesson := model.Lesson{LessonID: uuid.New(), UnitID: unit.UnitID, Title: l.title, Order: li + 1}
			for ci, c := range l.challenges {
				challenge := model.Challenge{
					ChallengeID: uuid.New(),
					LessonID:    lesson.LessonID,
					Type:        model.ChallengeTypeSelect,
					Question:    c.question,
					Order:       ci + 1,
				}
				challenge.Options = append(challenge.Options, model.ChallengeOption{
					OptionID: uuid.New(), ChallengeID: challenge.ChallengeID, Text: c.correct, Correct: true,
				})
				for _, w := range c.wrong {
					challenge.Options = append(challenge.Options, model.ChallengeOption{
						OptionID: uuid.New(), ChallengeID: challenge.ChallengeID, Text: w,
					})
				}
				lesson.Challenges = append(lesson.Challenges, challenge)
			}
			unit.Lessons = append(unit.Lessons, lesson)
		}
		course.Units = append(course.Units, unit)
	}
	return course
}
