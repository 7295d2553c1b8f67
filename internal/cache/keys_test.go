package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "quizhub:quiz:view:q1", GenerateCacheKey("quiz", "view", "q1"))
	assert.Equal(t, "quizhub:quiz:list:all:p1_p2", GenerateCacheKey("quiz", "list", "all", "p1", "p2"))
}

func TestQuizKeys(t *testing.T) {
	assert.Equal(t, "quizhub:quiz:view:01ABC", QuizViewKey("01ABC"))
	assert.Equal(t, "quizhub:quiz:list:all", QuizListKey())
	assert.NotEqual(t, QuizViewKey("a"), QuizViewKey("b"))
}
