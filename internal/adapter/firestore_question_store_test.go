package adapter

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"quiz-brain/internal/config"
	"quiz-brain/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProjectIDFromCredentials(t *testing.T) {
	assert.Equal(t, "quiz-brain-prod", projectIDFromCredentials(`{"type":"service_account","project_id":"quiz-brain-prod"}`))
	assert.Empty(t, projectIDFromCredentials(""))
	assert.Empty(t, projectIDFromCredentials("{not json"))
}

func TestFirestoreQuestion_RoundTrip(t *testing.T) {
	q := domain.Question{Text: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "B", Explanation: "because"}
	assert.Equal(t, q, toFirestoreQuestion(q).toDomain())
}

func TestNewFirestoreClient_NotConfigured(t *testing.T) {
	t.Setenv("FIRESTORE_EMULATOR_HOST", "")

	_, err := NewFirestoreClient(context.Background(), config.FirestoreConfig{})
	assert.ErrorIs(t, err, domain.ErrStoreNotConfigured)
}

// Runs only against a local emulator, e.g.
// gcloud emulators firestore start --host-port=localhost:8686
func TestFirestoreQuestionStore_Emulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	cfg := config.FirestoreConfig{ProjectID: "quiz-brain-test"}

	client, err := NewFirestoreClient(ctx, cfg)
	require.NoError(t, err)
	store := NewFirestoreQuestionStore(client, cfg, zap.NewNop())
	defer store.Close()

	topic := fmt.Sprintf("emulator-%d", time.Now().UnixNano())

	empty, err := store.ListQuestions(ctx, topic)
	require.NoError(t, err)
	assert.Empty(t, empty)

	batch := []domain.Question{
		{Text: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A", Explanation: "E1"},
		{Text: "Q2", Options: []string{"C", "D"}, CorrectAnswer: "D", Explanation: "E2"},
	}
	require.NoError(t, store.AppendQuestions(ctx, topic, batch))

	stored, err := store.ListQuestions(ctx, topic)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Q1", "Q2"}, domain.QuestionTexts(stored))
}
