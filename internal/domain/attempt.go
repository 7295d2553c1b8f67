package domain

import "time"

// SubmittedAnswer is one (question id, answer text) pair of a submission.
type SubmittedAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Attempt is one user's submitted answers to a quiz plus the computed score.
// Attempts are append-only: created exactly once per submission and never
// mutated or deleted by this service.
type Attempt struct {
	ID          string
	UserID      string
	QuizID      string
	QuizTitle   string // joined on reads, empty on writes
	Answers     []SubmittedAnswer
	Score       int
	SubmittedAt time.Time
	CreatedAt   time.Time
}

// NewAttempt creates a new Attempt instance timestamped at call time.
func NewAttempt(userID, quizID string, answers []SubmittedAnswer, score int) *Attempt {
	now := time.Now()
	return &Attempt{
		UserID:      userID,
		QuizID:      quizID,
		Answers:     answers,
		Score:       score,
		SubmittedAt: now,
		CreatedAt:   now,
	}
}

// Validate validates the attempt
func (a *Attempt) Validate() error {
	if a.UserID == "" {
		return NewValidationError("user ID is required")
	}
	if a.QuizID == "" {
		return NewValidationError("quiz ID is required")
	}
	if a.Score < 0 {
		return NewValidationError("score cannot be negative")
	}
	return nil
}
