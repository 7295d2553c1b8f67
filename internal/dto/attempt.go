package dto

import (
	"time"

	"quizhub/internal/domain"
)

// AnswerPayload is one submitted (question id, answer) pair.
type AnswerPayload struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// SubmitAttemptRequest is the payload for submitting a quiz attempt.
// @Description Request body for submitting answers to a quiz
type SubmitAttemptRequest struct {
	QuizID  string          `json:"quiz_id"`
	Answers []AnswerPayload `json:"answers"`
}

// SubmitAttemptResponse carries the score plus the full correct-answer key so
// the client can render a per-question review, including unanswered ones.
type SubmitAttemptResponse struct {
	AttemptID      string            `json:"attempt_id"`
	Score          int               `json:"score"`
	Total          int               `json:"total"`
	CorrectAnswers map[string]string `json:"correct_answers"`
}

// AttemptView is a stored attempt in the API response.
type AttemptView struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	QuizID      string          `json:"quiz_id"`
	QuizTitle   string          `json:"quiz_title,omitempty"`
	Answers     []AnswerPayload `json:"answers"`
	Score       int             `json:"score"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// NewAttemptView maps a domain attempt into its response shape.
func NewAttemptView(attempt *domain.Attempt) *AttemptView {
	answers := make([]AnswerPayload, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		answers = append(answers, AnswerPayload{QuestionID: a.QuestionID, Answer: a.Answer})
	}
	return &AttemptView{
		ID:          attempt.ID,
		UserID:      attempt.UserID,
		QuizID:      attempt.QuizID,
		QuizTitle:   attempt.QuizTitle,
		Answers:     answers,
		Score:       attempt.Score,
		SubmittedAt: attempt.SubmittedAt,
	}
}

// NewAttemptViews maps a list of attempts.
func NewAttemptViews(attempts []domain.Attempt) []AttemptView {
	views := make([]AttemptView, 0, len(attempts))
	for i := range attempts {
		views = append(views, *NewAttemptView(&attempts[i]))
	}
	return views
}
