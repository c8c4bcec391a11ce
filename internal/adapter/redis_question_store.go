package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"quiz-brain/internal/cache"
	"quiz-brain/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisQuestion is the JSON stored in each list element.
type redisQuestion struct {
	Pergunta        string   `json:"pergunta"`
	Opcoes          []string `json:"opcoes"`
	RespostaCorreta string   `json:"respostaCorreta"`
	Explicacao      string   `json:"explicacao"`
}

// RedisQuestionStore implements domain.QuestionStore with one Redis list
// per topic.
type RedisQuestionStore struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// NewRedisQuestionStore creates a new instance of RedisQuestionStore.
func NewRedisQuestionStore(client redis.UniversalClient, logger *zap.Logger) *RedisQuestionStore {
	return &RedisQuestionStore{client: client, logger: logger}
}

// ListQuestions returns the topic's list in insertion order. Elements that
// fail to decode are skipped.
func (r *RedisQuestionStore) ListQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	key := cache.QuestionsKey(topic)
	values, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, domain.NewStoreUnavailableError("failed to list questions", err)
	}

	questions := make([]domain.Question, 0, len(values))
	for i, v := range values {
		var rq redisQuestion
		if err := json.Unmarshal([]byte(v), &rq); err != nil {
			r.logger.Warn("Skipping undecodable stored question",
				zap.String("key", key), zap.Int("index", i), zap.Error(err))
			continue
		}
		questions = append(questions, domain.Question{
			Text:          rq.Pergunta,
			Options:       rq.Opcoes,
			CorrectAnswer: rq.RespostaCorreta,
			Explanation:   rq.Explicacao,
		})
	}
	return questions, nil
}

// AppendQuestions pushes all questions inside one MULTI/EXEC block, so the
// batch lands entirely or not at all.
func (r *RedisQuestionStore) AppendQuestions(ctx context.Context, topic string, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		b, err := json.Marshal(redisQuestion{
			Pergunta:        q.Text,
			Opcoes:          q.Options,
			RespostaCorreta: q.CorrectAnswer,
			Explicacao:      q.Explanation,
		})
		if err != nil {
			return domain.NewInternalError("failed to encode question", err)
		}
		values = append(values, string(b))
	}

	key := cache.QuestionsKey(topic)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		return nil
	})
	if err != nil {
		return domain.NewStoreUnavailableError(fmt.Sprintf("failed to append %d questions", len(questions)), err)
	}
	return nil
}

var _ domain.QuestionStore = (*RedisQuestionStore)(nil)
