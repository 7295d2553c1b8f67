package repository

import (
	"context"
	"testing"
	"time"

	"quizhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attemptColumns() []string {
	return []string{"id", "user_id", "quiz_id", "answers", "score", "submitted_at", "created_at", "quiz_title"}
}

func TestCreateAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	attempt := &domain.Attempt{
		ID:     "att1",
		UserID: "user1",
		QuizID: "quiz1",
		Answers: []domain.SubmittedAnswer{
			{QuestionID: "q1", Answer: "A"},
		},
		Score: 1,
	}

	mock.ExpectExec(`INSERT INTO attempts \(id, user_id, quiz_id, answers, score, submitted_at, created_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\)`).
		WithArgs("att1", "user1", "quiz1", sqlmock.AnyArg(), 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateAttempt(context.Background(), attempt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAttemptsByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	now := time.Now()
	answersJSON := []byte(`[{"question_id":"q1","answer":"A"}]`)
	mock.ExpectQuery(`SELECT a\.id, a\.user_id, a\.quiz_id, a\.answers, a\.score, a\.submitted_at, a\.created_at, q\.title AS quiz_title FROM attempts a LEFT JOIN quizzes q ON q\.id = a\.quiz_id WHERE a\.user_id = \$1 ORDER BY a\.submitted_at DESC`).
		WithArgs("user1").
		WillReturnRows(sqlmock.NewRows(attemptColumns()).
			AddRow("att2", "user1", "quiz1", answersJSON, 1, now, now, "Sample").
			AddRow("att1", "user1", "quiz2", []byte(`[]`), 0, now.Add(-time.Hour), now, nil))

	attempts, err := repo.ListAttemptsByUserID(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	assert.Equal(t, "att2", attempts[0].ID)
	assert.Equal(t, "Sample", attempts[0].QuizTitle)
	require.Len(t, attempts[0].Answers, 1)
	assert.Equal(t, "q1", attempts[0].Answers[0].QuestionID)

	// A deleted quiz leaves the attempt intact with no title.
	assert.Equal(t, "", attempts[1].QuizTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllAttempts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT a\.id, a\.user_id, a\.quiz_id, a\.answers, a\.score, a\.submitted_at, a\.created_at, q\.title AS quiz_title FROM attempts a LEFT JOIN quizzes q ON q\.id = a\.quiz_id ORDER BY a\.submitted_at DESC`).
		WillReturnRows(sqlmock.NewRows(attemptColumns()).
			AddRow("att1", "user1", "quiz1", []byte(`[]`), 2, now, now, "Sample").
			AddRow("att2", "user2", "quiz1", []byte(`[]`), 0, now.Add(-time.Minute), now, "Sample"))

	attempts, err := repo.ListAllAttempts(context.Background())
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "user1", attempts[0].UserID)
	assert.Equal(t, "user2", attempts[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAttemptByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSQLXAttemptRepository(db)

		now := time.Now()
		mock.ExpectQuery(`SELECT a\.id, a\.user_id, a\.quiz_id, a\.answers, a\.score, a\.submitted_at, a\.created_at, q\.title AS quiz_title FROM attempts a LEFT JOIN quizzes q ON q\.id = a\.quiz_id WHERE a\.id = \$1`).
			WithArgs("att1").
			WillReturnRows(sqlmock.NewRows(attemptColumns()).
				AddRow("att1", "user1", "quiz1", []byte(`[]`), 1, now, now, "Sample"))

		attempt, err := repo.GetAttemptByID(context.Background(), "att1")
		require.NoError(t, err)
		require.NotNil(t, attempt)
		assert.Equal(t, "user1", attempt.UserID)
	})

	t.Run("missing yields nil, nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSQLXAttemptRepository(db)

		mock.ExpectQuery(`SELECT a\.id,`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(attemptColumns()))

		attempt, err := repo.GetAttemptByID(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, attempt)
	})
}
