package domain

import "context"

// QuizRepository defines the interface for quiz persistence.
// Lookups return (nil, nil) when no quiz matches.
type QuizRepository interface {
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	ReplaceQuiz(ctx context.Context, quiz *Quiz) (bool, error)
	DeleteQuiz(ctx context.Context, id string) (bool, error)
}

// AttemptRepository defines the interface for attempt persistence.
// Attempts are append-only; there is no update or delete.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	GetAttemptByID(ctx context.Context, id string) (*Attempt, error)
	ListAttemptsByUserID(ctx context.Context, userID string) ([]Attempt, error)
	ListAllAttempts(ctx context.Context) ([]Attempt, error)
}
