package cache

import "strings"

const (
	GlobalKeyPrefix = "quizhub"

	quizListIdentifier = "all"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizViewKey is the cache key for a single projected quiz.
func QuizViewKey(quizID string) string {
	return GenerateCacheKey("quiz", "view", quizID)
}

// QuizListKey is the cache key for the projected quiz listing.
func QuizListKey() string {
	return GenerateCacheKey("quiz", "list", quizListIdentifier)
}
