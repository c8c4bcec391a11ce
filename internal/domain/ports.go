package domain

import (
	"context"
	"errors"
)

// QuestionStore persists generated questions partitioned by topic.
type QuestionStore interface {
	// ListQuestions returns every stored question for topic in store order.
	// An unseen topic yields an empty slice.
	ListQuestions(ctx context.Context, topic string) ([]Question, error)
	// AppendQuestions stores each question as a new record. No uniqueness
	// check is made.
	AppendQuestions(ctx context.Context, topic string, questions []Question) error
}

// QuizGenerationService asks the model for new question candidates. The
// returned candidates are schema-shaped but not yet checked against the
// Question invariants.
type QuizGenerationService interface {
	GenerateQuizCandidates(ctx context.Context, topic string, exclusions []string, numQuestions int) ([]Question, error)
}

// PerformanceAnalyzer asks the model to diagnose a learner's mistakes.
type PerformanceAnalyzer interface {
	AnalyzePerformance(ctx context.Context, req AnalysisRequest) (*AnalysisReport, error)
}

// ErrStoreNotConfigured is returned by store constructors when credentials
// are missing. The service then runs without a store.
var ErrStoreNotConfigured = errors.New("question store is not configured")

// TransactionManager runs fn inside a single storage transaction. The
// transaction travels in the context handed to fn.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
