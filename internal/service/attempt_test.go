package service

import (
	"context"
	"errors"
	"testing"

	"quizhub/internal/domain"
	"quizhub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func gradedQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:    "quiz1",
		Title: "Graded",
		Questions: []domain.Question{
			{ID: "q1", Text: "Pick A", Options: []string{"A", "B"}, CorrectAnswer: "A"},
			{ID: "q2", Text: "Pick D", Options: []string{"C", "D"}, CorrectAnswer: "D"},
		},
		CreatedBy: "author1",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("scores, records and returns the full correct-answer map", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		quizRepo.On("GetQuizByID", mock.Anything, "quiz1").Return(gradedQuiz(), nil)

		var recorded *domain.Attempt
		attemptRepo.On("CreateAttempt", mock.Anything, mock.AnythingOfType("*domain.Attempt")).
			Run(func(args mock.Arguments) { recorded = args.Get(1).(*domain.Attempt) }).
			Return(nil)

		resp, err := svc.Submit(ctx, "user1", &dto.SubmitAttemptRequest{
			QuizID: "quiz1",
			Answers: []dto.AnswerPayload{
				{QuestionID: "q1", Answer: "A"},
				{QuestionID: "q2", Answer: "C"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Score)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, map[string]string{"q1": "A", "q2": "D"}, resp.CorrectAnswers)
		assert.NotEmpty(t, resp.AttemptID)

		require.NotNil(t, recorded)
		assert.Equal(t, resp.AttemptID, recorded.ID)
		assert.Equal(t, "user1", recorded.UserID)
		assert.Equal(t, "quiz1", recorded.QuizID)
		assert.Equal(t, 1, recorded.Score)
		assert.Len(t, recorded.Answers, 2, "answers are stored exactly as submitted")
		assert.False(t, recorded.SubmittedAt.IsZero())
	})

	t.Run("unknown question ids are ignored, not rejected", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		quizRepo.On("GetQuizByID", mock.Anything, "quiz1").Return(gradedQuiz(), nil)
		attemptRepo.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Submit(ctx, "user1", &dto.SubmitAttemptRequest{
			QuizID: "quiz1",
			Answers: []dto.AnswerPayload{
				{QuestionID: "q1", Answer: "A"},
				{QuestionID: "not-in-quiz", Answer: "A"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Score)
	})

	t.Run("empty submission scores zero with the full map", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		quizRepo.On("GetQuizByID", mock.Anything, "quiz1").Return(gradedQuiz(), nil)
		attemptRepo.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Submit(ctx, "user1", &dto.SubmitAttemptRequest{QuizID: "quiz1"})
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Score)
		assert.Len(t, resp.CorrectAnswers, 2)
	})

	t.Run("missing quiz yields not found and records nothing", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		quizRepo.On("GetQuizByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.Submit(ctx, "user1", &dto.SubmitAttemptRequest{QuizID: "ghost"})

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)
		attemptRepo.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
	})

	t.Run("missing quiz id is a validation error", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		_, err := svc.Submit(ctx, "user1", &dto.SubmitAttemptRequest{})

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeValidation, domainErr.Code)
		quizRepo.AssertNotCalled(t, "GetQuizByID", mock.Anything, mock.Anything)
	})

	t.Run("recording failure surfaces as a storage error", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		quizRepo.On("GetQuizByID", mock.Anything, "quiz1").Return(gradedQuiz(), nil)
		attemptRepo.On("CreateAttempt", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := svc.Submit(ctx, "user1", &dto.SubmitAttemptRequest{QuizID: "quiz1"})

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeStorage, domainErr.Code)
	})
}

func TestListAttempts(t *testing.T) {
	ctx := context.Background()

	t.Run("my attempts map to views with quiz titles", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		attemptRepo.On("ListAttemptsByUserID", mock.Anything, "user1").Return([]domain.Attempt{
			{
				ID:        "att1",
				UserID:    "user1",
				QuizID:    "quiz1",
				QuizTitle: "Graded",
				Answers:   []domain.SubmittedAnswer{{QuestionID: "q1", Answer: "A"}},
				Score:     1,
			},
		}, nil)

		views, err := svc.ListMyAttempts(ctx, "user1")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Graded", views[0].QuizTitle)
		assert.Equal(t, 1, views[0].Score)
	})

	t.Run("all attempts maps repository failure to a storage error", func(t *testing.T) {
		quizRepo := new(MockQuizRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewAttemptService(quizRepo, attemptRepo)

		attemptRepo.On("ListAllAttempts", mock.Anything).Return(nil, errors.New("boom"))

		_, err := svc.ListAllAttempts(ctx)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeStorage, domainErr.Code)
	})
}
