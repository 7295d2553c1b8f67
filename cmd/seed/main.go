// Command seed inserts a small demo quiz so a fresh environment has
// something to take.
package main

import (
	"context"
	"log"

	"quizhub/internal/config"
	"quizhub/internal/database"
	"quizhub/internal/domain"
	"quizhub/internal/repository"
	"quizhub/internal/util"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	quizRepo := repository.NewSQLXQuizRepository(db)

	quiz := domain.NewQuiz(
		"Go basics",
		"A short warm-up quiz about the Go language.",
		util.NewULID(), // demo author id
		[]domain.Question{
			{
				ID:            util.NewULID(),
				Text:          "Which keyword declares a new variable with inferred type?",
				Options:       []string{"var", ":=", "let", "def"},
				CorrectAnswer: ":=",
			},
			{
				ID:            util.NewULID(),
				Text:          "What does a nil map lookup return?",
				Options:       []string{"panic", "the zero value", "an error"},
				CorrectAnswer: "the zero value",
			},
		},
	)
	quiz.ID = util.NewULID()

	if err := quiz.Validate(); err != nil {
		log.Fatalf("Seed quiz is invalid: %v", err)
	}

	if err := quizRepo.CreateQuiz(context.Background(), quiz); err != nil {
		log.Fatalf("Failed to seed quiz: %v", err)
	}

	log.Printf("Seeded quiz %s with %d questions", quiz.ID, len(quiz.Questions))
}
