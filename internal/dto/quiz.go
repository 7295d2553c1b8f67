package dto

import (
	"time"

	"quizhub/internal/domain"
)

// QuestionView is the read-safe shape of a question. It has no correct-answer
// field at all, so the answer cannot leak through serialization.
type QuestionView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizView is the read-safe shape of a quiz used by all non-grading reads.
// @Description Quiz with questions, correct answers omitted
type QuizView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Questions   []QuestionView `json:"questions"`
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewQuizView projects a quiz into its read-safe view. It has no side
// effects; the projection is idempotent because QuestionView simply has no
// place for a correct answer.
func NewQuizView(quiz *domain.Quiz) *QuizView {
	questions := make([]QuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return &QuizView{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
		CreatedBy:   quiz.CreatedBy,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
}

// NewQuizViews projects a list of quizzes uniformly.
func NewQuizViews(quizzes []*domain.Quiz) []QuizView {
	views := make([]QuizView, 0, len(quizzes))
	for _, quiz := range quizzes {
		views = append(views, *NewQuizView(quiz))
	}
	return views
}

// QuestionPayload is one question of an authoring request.
type QuestionPayload struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// CreateQuizRequest is the payload for creating a quiz.
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions"`
}

// ReplaceQuizRequest is the payload for updating a quiz. Omitted fields leave
// the stored value unchanged; a provided questions list replaces the embedded
// list wholesale and question ids are regenerated.
type ReplaceQuizRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Questions   *[]QuestionPayload `json:"questions"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
