package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"quiz-brain/internal/config"
	"quiz-brain/internal/domain"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// firestoreQuestion is the document shape under
// {root}/{topic}/{questions}/{autoID}.
type firestoreQuestion struct {
	Pergunta        string   `firestore:"pergunta"`
	Opcoes          []string `firestore:"opcoes"`
	RespostaCorreta string   `firestore:"respostaCorreta"`
	Explicacao      string   `firestore:"explicacao"`
}

func toFirestoreQuestion(q domain.Question) firestoreQuestion {
	return firestoreQuestion{
		Pergunta:        q.Text,
		Opcoes:          q.Options,
		RespostaCorreta: q.CorrectAnswer,
		Explicacao:      q.Explanation,
	}
}

func (f firestoreQuestion) toDomain() domain.Question {
	return domain.Question{
		Text:          f.Pergunta,
		Options:       f.Opcoes,
		CorrectAnswer: f.RespostaCorreta,
		Explanation:   f.Explicacao,
	}
}

// NewFirestoreClient builds a client from the credentials blob. It returns
// domain.ErrStoreNotConfigured when there are no credentials and no
// emulator to talk to.
func NewFirestoreClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	emulator := os.Getenv("FIRESTORE_EMULATOR_HOST") != ""
	if cfg.CredentialsJSON == "" && !emulator {
		return nil, domain.ErrStoreNotConfigured
	}

	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = projectIDFromCredentials(cfg.CredentialsJSON)
	}
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

// projectIDFromCredentials reads project_id from a service account key.
func projectIDFromCredentials(credentialsJSON string) string {
	if credentialsJSON == "" {
		return ""
	}
	var key struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal([]byte(credentialsJSON), &key); err != nil {
		return ""
	}
	return key.ProjectID
}

// FirestoreQuestionStore implements domain.QuestionStore on Cloud Firestore.
type FirestoreQuestionStore struct {
	client              *firestore.Client
	rootCollection      string
	questionsCollection string
	logger              *zap.Logger
}

// NewFirestoreQuestionStore creates a new instance of FirestoreQuestionStore.
func NewFirestoreQuestionStore(client *firestore.Client, cfg config.FirestoreConfig, logger *zap.Logger) *FirestoreQuestionStore {
	root, questions := cfg.RootCollection, cfg.QuestionsCollection
	if root == "" {
		root = "quizzes"
	}
	if questions == "" {
		questions = "questions"
	}
	return &FirestoreQuestionStore{
		client:              client,
		rootCollection:      root,
		questionsCollection: questions,
		logger:              logger,
	}
}

func (s *FirestoreQuestionStore) questions(topic string) *firestore.CollectionRef {
	return s.client.Collection(s.rootCollection).Doc(topic).Collection(s.questionsCollection)
}

// ListQuestions streams every document of the topic's sub-collection.
// Documents that do not decode are skipped.
func (s *FirestoreQuestionStore) ListQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	iter := s.questions(topic).Documents(ctx)
	defer iter.Stop()

	questions := make([]domain.Question, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domain.NewStoreUnavailableError("failed to list questions", err)
		}

		var fq firestoreQuestion
		if err := doc.DataTo(&fq); err != nil {
			s.logger.Warn("Skipping undecodable question document",
				zap.String("doc", doc.Ref.Path), zap.Error(err))
			continue
		}
		questions = append(questions, fq.toDomain())
	}
	return questions, nil
}

// AppendQuestions creates one document per question inside a single
// transaction.
func (s *FirestoreQuestionStore) AppendQuestions(ctx context.Context, topic string, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	col := s.questions(topic)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, q := range questions {
			if err := tx.Create(col.NewDoc(), toFirestoreQuestion(q)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.NewStoreUnavailableError(fmt.Sprintf("failed to append %d questions", len(questions)), err)
	}
	return nil
}

// Close releases the underlying client.
func (s *FirestoreQuestionStore) Close() error {
	return s.client.Close()
}

var _ domain.QuestionStore = (*FirestoreQuestionStore)(nil)
