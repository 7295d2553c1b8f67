package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SubmittedAnswer is the persisted shape of one submitted answer.
type SubmittedAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// AnswerList is a custom type for storing an attempt's answers as a JSONB
// column.
type AnswerList []SubmittedAnswer

// Value implements the driver.Valuer interface
func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return fmt.Errorf("AnswerList Scan: unsupported type %T", value)
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*l = AnswerList{}
		return nil
	}

	return json.Unmarshal(bytesToParse, l)
}

// Attempt is the database model for the attempts table. QuizTitle is joined
// from quizzes on list queries and never written.
type Attempt struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	QuizID      string         `db:"quiz_id"`
	Answers     AnswerList     `db:"answers"`
	Score       int            `db:"score"`
	SubmittedAt time.Time      `db:"submitted_at"`
	CreatedAt   time.Time      `db:"created_at"`
	QuizTitle   sql.NullString `db:"quiz_title"`
}

func (Attempt) TableName() string {
	return "attempts"
}
