package adapter

import (
	"context"
	"errors"
	"testing"

	"quiz-brain/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	storedQ1 = `{"pergunta":"Q1","opcoes":["A","B"],"respostaCorreta":"A","explicacao":"E1"}`
	storedQ2 = `{"pergunta":"Q2","opcoes":["C","D","E"],"respostaCorreta":"E","explicacao":"E2"}`
)

func TestRedisQuestionStore_ListQuestions(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisQuestionStore(db, zap.NewNop())
	ctx := context.Background()
	key := "quizbrain:questions:Photosynthesis"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectLRange(key, 0, -1).SetVal([]string{storedQ1, storedQ2})

		questions, err := store.ListQuestions(ctx, "Photosynthesis")
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "Q1", questions[0].Text)
		assert.Equal(t, []string{"C", "D", "E"}, questions[1].Options)
		assert.Equal(t, "E", questions[1].CorrectAnswer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnseenTopic", func(t *testing.T) {
		mock.ExpectLRange(key, 0, -1).SetVal([]string{})

		questions, err := store.ListQuestions(ctx, "Photosynthesis")
		require.NoError(t, err)
		assert.NotNil(t, questions)
		assert.Empty(t, questions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SkipsCorruptEntries", func(t *testing.T) {
		mock.ExpectLRange(key, 0, -1).SetVal([]string{"not-json", storedQ2})

		questions, err := store.ListQuestions(ctx, "Photosynthesis")
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "Q2", questions[0].Text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection refused")
		mock.ExpectLRange(key, 0, -1).SetErr(redisErr)

		_, err := store.ListQuestions(ctx, "Photosynthesis")
		var de *domain.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, domain.CodeStoreUnavailable, de.Code)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NilIsEmpty", func(t *testing.T) {
		mock.ExpectLRange(key, 0, -1).SetErr(redis.Nil)

		questions, err := store.ListQuestions(ctx, "Photosynthesis")
		require.NoError(t, err)
		assert.Empty(t, questions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisQuestionStore_AppendQuestions(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisQuestionStore(db, zap.NewNop())
	ctx := context.Background()
	key := "quizbrain:questions:Photosynthesis"

	questions := []domain.Question{
		{Text: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A", Explanation: "E1"},
		{Text: "Q2", Options: []string{"C", "D", "E"}, CorrectAnswer: "E", Explanation: "E2"},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectTxPipeline()
		mock.ExpectRPush(key, storedQ1, storedQ2).SetVal(2)
		mock.ExpectTxPipelineExec()

		err := store.AppendQuestions(ctx, "Photosynthesis", questions)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyIsNoop", func(t *testing.T) {
		err := store.AppendQuestions(ctx, "Photosynthesis", nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		mock.ExpectTxPipeline()
		mock.ExpectRPush(key, storedQ1, storedQ2).SetErr(errors.New("READONLY"))
		mock.ExpectTxPipelineExec()

		err := store.AppendQuestions(ctx, "Photosynthesis", questions)
		var de *domain.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, domain.CodeStoreUnavailable, de.Code)
	})
}
