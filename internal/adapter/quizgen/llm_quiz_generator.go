package quizgen

import (
	"context"
	"encoding/json"

	"quiz-brain/internal/domain"
	"quiz-brain/internal/llm"

	"go.uber.org/zap"
)

// Options tune the generation request.
type Options struct {
	Language    string
	Temperature float64
	MaxTokens   int
}

// LLMQuizGenerator implements domain.QuizGenerationService on top of a
// structured llm.Provider.
type LLMQuizGenerator struct {
	provider llm.Provider
	opts     Options
	logger   *zap.Logger
}

// NewLLMQuizGenerator creates a new instance of LLMQuizGenerator.
func NewLLMQuizGenerator(provider llm.Provider, opts Options, logger *zap.Logger) *LLMQuizGenerator {
	if opts.Language == "" {
		opts.Language = "English"
	}
	return &LLMQuizGenerator{
		provider: provider,
		opts:     opts,
		logger:   logger,
	}
}

// GenerateQuizCandidates builds the exclusion-aware prompt, calls the model
// with QuizSchema and decodes the result. Candidates are returned as the
// model produced them.
func (g *LLMQuizGenerator) GenerateQuizCandidates(ctx context.Context, topic string, exclusions []string, numQuestions int) ([]domain.Question, error) {
	prompt, err := BuildQuizPrompt(topic, numQuestions, g.opts.Language, exclusions)
	if err != nil {
		return nil, domain.NewInternalError("failed to build quiz prompt", err)
	}

	g.logger.Debug("Requesting quiz candidates",
		zap.String("topic", topic),
		zap.Int("num_questions", numQuestions),
		zap.Int("exclusions", len(exclusions)),
	)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Schema:      QuizSchema,
		MaxTokens:   g.opts.MaxTokens,
		Temperature: g.opts.Temperature,
	})
	if err != nil {
		g.logger.Error("Quiz generation failed", zap.String("topic", topic), zap.Error(err))
		return nil, llm.AsDomainError(err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		// The schema accepted it, so this only happens on a type mismatch
		// the schema cannot express.
		return nil, domain.NewLLMMalformedOutputError(err)
	}

	questions := make([]domain.Question, 0, len(out.Quiz))
	for _, q := range out.Quiz {
		questions = append(questions, domain.Question{
			Text:          q.Pergunta,
			Options:       q.Opcoes,
			CorrectAnswer: q.RespostaCorreta,
			Explanation:   q.Explicacao,
		})
	}
	return questions, nil
}

// Static assertion to ensure LLMQuizGenerator implements QuizGenerationService
var _ domain.QuizGenerationService = (*LLMQuizGenerator)(nil)
