package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizhub/internal/domain"
	"quizhub/internal/repository/models"
	"quizhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	questions := make([]domain.Question, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, domain.Question{
			ID:            q.ID,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: util.NullStringToString(m.Description),
		Questions:   questions,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomainQuiz(q *domain.Quiz) *models.Quiz {
	if q == nil {
		return nil
	}
	questions := make(models.QuestionList, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, models.Question{
			ID:            question.ID,
			Text:          question.Text,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
		})
	}
	return &models.Quiz{
		ID:          q.ID,
		Title:       q.Title,
		Description: util.StringToNullString(q.Description),
		Questions:   questions,
		CreatedBy:   q.CreatedBy,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// GetQuizByID fetches a quiz by id; it returns (nil, nil) when no row matches.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	query := `SELECT id, title, description, questions, created_by, created_at, updated_at
	          FROM quizzes WHERE id = $1`

	var m models.Quiz
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	return toDomainQuiz(&m), nil
}

// ListQuizzes returns all quizzes, newest first.
func (r *sqlxQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	query := `SELECT id, title, description, questions, created_by, created_at, updated_at
	          FROM quizzes ORDER BY created_at DESC`

	var ms []models.Quiz
	if err := r.db.SelectContext(ctx, &ms, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(ms))
	for i := range ms {
		quizzes = append(quizzes, toDomainQuiz(&ms[i]))
	}
	return quizzes, nil
}

// CreateQuiz inserts a new quiz.
func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m := fromDomainQuiz(quiz)

	query := `INSERT INTO quizzes (id, title, description, questions, created_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Title,
		m.Description,
		m.Questions,
		m.CreatedBy,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// ReplaceQuiz overwrites the stored quiz row. It reports whether a row was
// replaced.
func (r *sqlxQuizRepository) ReplaceQuiz(ctx context.Context, quiz *domain.Quiz) (bool, error) {
	m := fromDomainQuiz(quiz)

	query := `UPDATE quizzes
	          SET title = $1, description = $2, questions = $3, updated_at = $4
	          WHERE id = $5`

	res, err := r.db.ExecContext(ctx, query,
		m.Title,
		m.Description,
		m.Questions,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to replace quiz: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// DeleteQuiz removes a quiz outright. It reports whether a row was deleted.
func (r *sqlxQuizRepository) DeleteQuiz(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
