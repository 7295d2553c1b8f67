package service

import (
	"context"

	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/logger"
	"quizhub/internal/util"

	"go.uber.org/zap"
)

// AttemptService defines the interface for the submission flow: grading a
// submission against the stored quiz and recording the attempt.
type AttemptService interface {
	Submit(ctx context.Context, userID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error)
	ListMyAttempts(ctx context.Context, userID string) ([]dto.AttemptView, error)
	ListAllAttempts(ctx context.Context) ([]dto.AttemptView, error)
}

// attemptService implements AttemptService
type attemptService struct {
	quizRepo    domain.QuizRepository
	attemptRepo domain.AttemptRepository
}

// NewAttemptService creates a new instance of attemptService.
func NewAttemptService(quizRepo domain.QuizRepository, attemptRepo domain.AttemptRepository) AttemptService {
	return &attemptService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
	}
}

// Submit implements AttemptService. The quiz is read fresh per call; scoring
// shares no mutable state across requests. An empty answer list is valid and
// scores 0. The attempt record stores the answers exactly as submitted.
func (s *attemptService) Submit(ctx context.Context, userID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error) {
	if req.QuizID == "" {
		return nil, domain.NewValidationError("quiz_id is required")
	}

	quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizID)
	if err != nil {
		return nil, domain.NewStorageError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(req.QuizID)
	}

	answers := make([]domain.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.SubmittedAnswer{QuestionID: a.QuestionID, Answer: a.Answer})
	}

	score, correctAnswers := quiz.Score(answers)

	attempt := domain.NewAttempt(userID, quiz.ID, answers, score)
	attempt.ID = util.NewULID()
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewStorageError("Failed to record attempt", err)
	}

	logger.Get().Info("Attempt recorded",
		zap.String("attemptID", attempt.ID),
		zap.String("quizID", quiz.ID),
		zap.String("userID", userID),
		zap.Int("score", score),
		zap.Int("total", len(quiz.Questions)),
	)

	return &dto.SubmitAttemptResponse{
		AttemptID:      attempt.ID,
		Score:          score,
		Total:          len(quiz.Questions),
		CorrectAnswers: correctAnswers,
	}, nil
}

// ListMyAttempts implements AttemptService
func (s *attemptService) ListMyAttempts(ctx context.Context, userID string) ([]dto.AttemptView, error) {
	attempts, err := s.attemptRepo.ListAttemptsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list attempts", err)
	}
	return dto.NewAttemptViews(attempts), nil
}

// ListAllAttempts implements AttemptService
func (s *attemptService) ListAllAttempts(ctx context.Context) ([]dto.AttemptView, error) {
	attempts, err := s.attemptRepo.ListAllAttempts(ctx)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list attempts", err)
	}
	return dto.NewAttemptViews(attempts), nil
}
