package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Question is the persisted shape of one embedded question.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuestionList is a custom type for storing a quiz's embedded questions as a
// JSONB column.
type QuestionList []Question

// Value implements the driver.Valuer interface
func (l QuestionList) Value() (driver.Value, error) {
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
func (l *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = QuestionList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return fmt.Errorf("QuestionList Scan: unsupported type %T", value)
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*l = QuestionList{}
		return nil
	}

	return json.Unmarshal(bytesToParse, l)
}

// Quiz is the database model for the quizzes table.
type Quiz struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Questions   QuestionList   `db:"questions"`
	CreatedBy   string         `db:"created_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
