package domain

import (
	"fmt"
	"time"
)

// Question is a prompt with multiple text options and exactly one correct
// option. Questions are owned by their quiz; their identity is only
// meaningful within it.
type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectAnswer string
}

// Validate checks the write-time invariants of a single question.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewValidationError("question text is required")
	}
	if len(q.Options) < 2 {
		return NewValidationError("each question needs at least 2 options")
	}
	if q.CorrectAnswer == "" {
		return NewValidationError("correct answer is required")
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("correct answer %q must be one of the options", q.CorrectAnswer))
}

// Quiz represents a named collection of questions owned by an author.
type Quiz struct {
	ID          string
	Title       string
	Description string
	Questions   []Question
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(title, description, createdBy string, questions []Question) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:       title,
		Description: description,
		Questions:   questions,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate enforces the authoring invariants before any persistence call:
// non-empty title, at least one question, and correctAnswer present among
// each question's options. The first violation aborts.
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewValidationError("title is required")
	}
	if len(q.Questions) == 0 {
		return NewValidationError("at least one question is required")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CorrectAnswerKey maps every question id of the quiz to its correct answer.
// The map always carries one entry per question, answered or not, so callers
// can render a full review.
func (q *Quiz) CorrectAnswerKey() map[string]string {
	key := make(map[string]string, len(q.Questions))
	for _, question := range q.Questions {
		key[question.ID] = question.CorrectAnswer
	}
	return key
}

// Score grades a submission against the quiz and returns the score together
// with the full correct-answer key.
//
// Matching is exact string equality, case and whitespace sensitive. Answers
// for question ids not present in the quiz are ignored. When the same
// question id appears more than once, the last occurrence wins (map overwrite
// semantics). Unanswered questions contribute no point. The score is always
// within [0, len(q.Questions)].
func (q *Quiz) Score(answers []SubmittedAnswer) (int, map[string]string) {
	key := q.CorrectAnswerKey()

	effective := make(map[string]string, len(answers))
	for _, a := range answers {
		if _, ok := key[a.QuestionID]; ok {
			effective[a.QuestionID] = a.Answer
		}
	}

	score := 0
	for questionID, answer := range effective {
		if key[questionID] == answer {
			score++
		}
	}
	return score, key
}
