package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/domain"
	"quizhub/internal/repository/models"
	"quizhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.Attempt) *domain.Attempt {
	if m == nil {
		return nil
	}
	answers := make([]domain.SubmittedAnswer, 0, len(m.Answers))
	for _, a := range m.Answers {
		answers = append(answers, domain.SubmittedAnswer{QuestionID: a.QuestionID, Answer: a.Answer})
	}
	return &domain.Attempt{
		ID:          m.ID,
		UserID:      m.UserID,
		QuizID:      m.QuizID,
		QuizTitle:   util.NullStringToString(m.QuizTitle),
		Answers:     answers,
		Score:       m.Score,
		SubmittedAt: m.SubmittedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func fromDomainAttempt(a *domain.Attempt) *models.Attempt {
	if a == nil {
		return nil
	}
	answers := make(models.AnswerList, 0, len(a.Answers))
	for _, answer := range a.Answers {
		answers = append(answers, models.SubmittedAnswer{QuestionID: answer.QuestionID, Answer: answer.Answer})
	}
	return &models.Attempt{
		ID:          a.ID,
		UserID:      a.UserID,
		QuizID:      a.QuizID,
		Answers:     answers,
		Score:       a.Score,
		SubmittedAt: a.SubmittedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// CreateAttempt inserts a new attempt. Attempts are append-only.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	m := fromDomainAttempt(attempt)

	if m.SubmittedAt.IsZero() {
		m.SubmittedAt = time.Now()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO attempts (id, user_id, quiz_id, answers, score, submitted_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.QuizID,
		m.Answers,
		m.Score,
		m.SubmittedAt,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// GetAttemptByID fetches an attempt by id; it returns (nil, nil) when no row
// matches.
func (r *sqlxAttemptRepository) GetAttemptByID(ctx context.Context, id string) (*domain.Attempt, error) {
	query := `SELECT a.id, a.user_id, a.quiz_id, a.answers, a.score, a.submitted_at, a.created_at,
	                 q.title AS quiz_title
	          FROM attempts a
	          LEFT JOIN quizzes q ON q.id = a.quiz_id
	          WHERE a.id = $1`

	var m models.Attempt
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt by id: %w", err)
	}
	return toDomainAttempt(&m), nil
}

// ListAttemptsByUserID returns a user's attempts, newest first, with the quiz
// title joined in for display.
func (r *sqlxAttemptRepository) ListAttemptsByUserID(ctx context.Context, userID string) ([]domain.Attempt, error) {
	query := `SELECT a.id, a.user_id, a.quiz_id, a.answers, a.score, a.submitted_at, a.created_at,
	                 q.title AS quiz_title
	          FROM attempts a
	          LEFT JOIN quizzes q ON q.id = a.quiz_id
	          WHERE a.user_id = $1
	          ORDER BY a.submitted_at DESC`

	var ms []models.Attempt
	if err := r.db.SelectContext(ctx, &ms, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list attempts by user: %w", err)
	}
	return toDomainAttempts(ms), nil
}

// ListAllAttempts returns every stored attempt, newest first.
func (r *sqlxAttemptRepository) ListAllAttempts(ctx context.Context) ([]domain.Attempt, error) {
	query := `SELECT a.id, a.user_id, a.quiz_id, a.answers, a.score, a.submitted_at, a.created_at,
	                 q.title AS quiz_title
	          FROM attempts a
	          LEFT JOIN quizzes q ON q.id = a.quiz_id
	          ORDER BY a.submitted_at DESC`

	var ms []models.Attempt
	if err := r.db.SelectContext(ctx, &ms, query); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	return toDomainAttempts(ms), nil
}

func toDomainAttempts(ms []models.Attempt) []domain.Attempt {
	attempts := make([]domain.Attempt, 0, len(ms))
	for i := range ms {
		attempts = append(attempts, *toDomainAttempt(&ms[i]))
	}
	return attempts
}
