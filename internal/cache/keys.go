package cache

import "strings"

const (
	GlobalKeyPrefix = "quizbrain"
)

// GenerateKey joins parts under the global prefix with ":".
func GenerateKey(parts ...string) string {
	return strings.Join(append([]string{GlobalKeyPrefix}, parts...), ":")
}

// QuestionsKey is the list holding every stored question of topic.
func QuestionsKey(topic string) string {
	return GenerateKey("questions", topic)
}
