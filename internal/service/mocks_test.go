package service

import (
	"context"

	"quiz-brain/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionStore ---
type MockQuestionStore struct {
	mock.Mock
}

func (m *MockQuestionStore) ListQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionStore) AppendQuestions(ctx context.Context, topic string, questions []domain.Question) error {
	args := m.Called(ctx, topic, questions)
	return args.Error(0)
}

// --- MockQuizGenerationService ---
type MockQuizGenerationService struct {
	mock.Mock
}

func (m *MockQuizGenerationService) GenerateQuizCandidates(ctx context.Context, topic string, exclusions []string, numQuestions int) ([]domain.Question, error) {
	args := m.Called(ctx, topic, exclusions, numQuestions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// --- MockPerformanceAnalyzer ---
type MockPerformanceAnalyzer struct {
	mock.Mock
}

func (m *MockPerformanceAnalyzer) AnalyzePerformance(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisReport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisReport), args.Error(1)
}

// --- MockQuizService ---
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, req *domain.QuizRequest) (*domain.Quiz, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}
