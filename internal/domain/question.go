package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTopicLength bounds a topic, in characters, so it stays usable as a
// document ID and key segment in every store backend.
const MaxTopicLength = 200

// Question is a single multiple-choice item produced by the model.
type Question struct {
	Text          string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

// Validate checks the invariants a question must hold before it is shown
// or stored: non-blank text, at least two options, and a non-blank correct
// answer that is exactly one of the options.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewMissingFieldError("pergunta")
	}
	if len(q.Options) < 2 {
		return ValidationError{
			Field:   "opcoes",
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("a question needs at least 2 options, got %d", len(q.Options)),
		}
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewMissingFieldError("respostaCorreta")
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return NewInvalidFormatError("respostaCorreta", "correct answer is not one of the options")
}

// QuestionTexts returns the prompt text of every question, in order.
func QuestionTexts(questions []Question) []string {
	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		texts = append(texts, q.Text)
	}
	return texts
}

// ValidateTopic returns nil when topic can be used as a partition key.
func ValidateTopic(field, topic string) *ValidationError {
	trimmed := strings.TrimSpace(topic)
	switch {
	case trimmed == "":
		err := NewMissingFieldError(field)
		return &err
	case utf8.RuneCountInString(trimmed) > MaxTopicLength:
		err := NewOutOfRangeError(field, utf8.RuneCountInString(trimmed), 1, MaxTopicLength)
		err.Message = fmt.Sprintf("%s must be at most %d characters", field, MaxTopicLength)
		return &err
	case strings.Contains(trimmed, "/"):
		err := NewInvalidFormatError(field, "must not contain '/'")
		return &err
	}
	return nil
}

// QuizRequest asks for Count new questions about Topic.
type QuizRequest struct {
	Topic string
	Count int
}

// Validate checks the request against the configured question limit.
func (r QuizRequest) Validate(maxQuestions int) ValidationErrors {
	var errs ValidationErrors
	if err := ValidateTopic("topic", r.Topic); err != nil {
		errs = append(errs, *err)
	}
	if r.Count <= 0 || r.Count > maxQuestions {
		errs = append(errs, NewOutOfRangeError("count", r.Count, 1, maxQuestions))
	}
	return errs
}

// Quiz is the outcome of one generation request. Only its questions are
// persisted.
type Quiz struct {
	Topic     string
	Questions []Question
	Requested int
	// Dropped counts model candidates rejected by Question.Validate.
	Dropped int
}
