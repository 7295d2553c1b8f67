package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizhub/internal/cache"
	"quizhub/internal/domain"
	"quizhub/internal/dto"
	"quizhub/internal/logger"
	"quizhub/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizViewCacheTTL bounds staleness of projected quiz reads. Authoring writes
// invalidate eagerly; the TTL is a backstop.
const QuizViewCacheTTL = 10 * time.Minute

// QuizService defines the interface for quiz authoring and projected reads.
// All read methods return views with correct answers omitted.
type QuizService interface {
	ListQuizzes(ctx context.Context) ([]dto.QuizView, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizView, error)
	CreateQuiz(ctx context.Context, authorID string, req *dto.CreateQuizRequest) (*dto.QuizView, error)
	ReplaceQuiz(ctx context.Context, quizID string, req *dto.ReplaceQuizRequest) (*dto.QuizView, error)
	DeleteQuiz(ctx context.Context, quizID string) error
}

// quizService implements QuizService
type quizService struct {
	repo  domain.QuizRepository
	cache cache.Cache
	group singleflight.Group
}

// NewQuizService creates a new instance of quizService. cache may be nil, in
// which case all reads go to the repository.
func NewQuizService(repo domain.QuizRepository, c cache.Cache) QuizService {
	return &quizService{
		repo:  repo,
		cache: c,
	}
}

// ListQuizzes implements QuizService
func (s *quizService) ListQuizzes(ctx context.Context) ([]dto.QuizView, error) {
	key := cache.QuizListKey()

	if raw, ok := s.cacheGet(ctx, key); ok {
		var views []dto.QuizView
		if err := json.Unmarshal([]byte(raw), &views); err == nil {
			return views, nil
		}
		logger.Get().Warn("Discarding undecodable quiz list cache entry", zap.String("key", key))
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		quizzes, err := s.repo.ListQuizzes(ctx)
		if err != nil {
			return nil, domain.NewStorageError("Failed to list quizzes", err)
		}
		views := dto.NewQuizViews(quizzes)
		s.cachePut(ctx, key, views)
		return views, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]dto.QuizView), nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizView, error) {
	key := cache.QuizViewKey(quizID)

	if raw, ok := s.cacheGet(ctx, key); ok {
		var view dto.QuizView
		if err := json.Unmarshal([]byte(raw), &view); err == nil {
			return &view, nil
		}
		logger.Get().Warn("Discarding undecodable quiz view cache entry", zap.String("key", key))
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		quiz, err := s.repo.GetQuizByID(ctx, quizID)
		if err != nil {
			return nil, domain.NewStorageError("Failed to get quiz", err)
		}
		if quiz == nil {
			return nil, domain.NewQuizNotFoundError(quizID)
		}
		view := dto.NewQuizView(quiz)
		s.cachePut(ctx, key, view)
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.QuizView), nil
}

// CreateQuiz implements QuizService. Validation happens entirely before any
// persistence call; no partial write occurs.
func (s *quizService) CreateQuiz(ctx context.Context, authorID string, req *dto.CreateQuizRequest) (*dto.QuizView, error) {
	quiz := domain.NewQuiz(req.Title, req.Description, authorID, buildQuestions(req.Questions))
	quiz.ID = util.NewULID()

	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, domain.NewStorageError("Failed to create quiz", err)
	}

	s.invalidate(ctx, quiz.ID)
	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.String("authorID", authorID),
		zap.Int("questions", len(quiz.Questions)),
	)
	return dto.NewQuizView(quiz), nil
}

// ReplaceQuiz implements QuizService. Omitted fields keep their stored value;
// a provided questions list replaces the embedded list wholesale, and the
// replacement questions get fresh identifiers. Callers editing a quiz must
// re-fetch to see the new ids.
func (s *quizService) ReplaceQuiz(ctx context.Context, quizID string, req *dto.ReplaceQuizRequest) (*dto.QuizView, error) {
	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewStorageError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.Questions != nil {
		quiz.Questions = buildQuestions(*req.Questions)
	}
	quiz.UpdatedAt = time.Now()

	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	replaced, err := s.repo.ReplaceQuiz(ctx, quiz)
	if err != nil {
		return nil, domain.NewStorageError("Failed to replace quiz", err)
	}
	if !replaced {
		// Deleted between our read and write; surface as not found.
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	s.invalidate(ctx, quizID)
	logger.Get().Info("Quiz replaced", zap.String("quizID", quizID))
	return dto.NewQuizView(quiz), nil
}

// DeleteQuiz implements QuizService
func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	deleted, err := s.repo.DeleteQuiz(ctx, quizID)
	if err != nil {
		return domain.NewStorageError("Failed to delete quiz", err)
	}
	if !deleted {
		return domain.NewQuizNotFoundError(quizID)
	}

	s.invalidate(ctx, quizID)
	logger.Get().Info("Quiz deleted", zap.String("quizID", quizID))
	return nil
}

// buildQuestions maps authoring payloads to domain questions with fresh ids.
func buildQuestions(payloads []dto.QuestionPayload) []domain.Question {
	questions := make([]domain.Question, 0, len(payloads))
	for _, p := range payloads {
		questions = append(questions, domain.Question{
			ID:            util.NewULID(),
			Text:          p.Text,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
		})
	}
	return questions
}

func (s *quizService) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return raw, true
}

func (s *quizService) cachePut(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), QuizViewCacheTTL); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops both the per-quiz view and the listing after any authoring
// write. Cache failures are logged, never surfaced.
func (s *quizService) invalidate(ctx context.Context, quizID string) {
	if s.cache == nil {
		return
	}
	for _, key := range []string{cache.QuizViewKey(quizID), cache.QuizListKey()} {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}
