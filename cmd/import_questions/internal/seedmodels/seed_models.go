package seedmodels

import (
	"encoding/json"
	"fmt"
	"sort"

	"quiz-brain/internal/domain"
)

// SeedQuestion defines the structure for a question in the JSON seed file.
type SeedQuestion struct {
	Pergunta        string   `json:"pergunta"`
	Opcoes          []string `json:"opcoes"`
	RespostaCorreta string   `json:"respostaCorreta"`
	Explicacao      string   `json:"explicacao"`
}

// SeedBank maps a topic to its questions.
type SeedBank map[string][]SeedQuestion

// SeedTopic is one topic of a bank after validation.
type SeedTopic struct {
	Topic     string
	Questions []domain.Question
	// Rejected holds one entry per question that failed validation.
	Rejected []string
}

// Parse decodes a seed file.
func Parse(data []byte) (SeedBank, error) {
	var bank SeedBank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return bank, nil
}

// Prepare validates every topic and question of the bank. Topics come back
// sorted so imports are reproducible.
func (b SeedBank) Prepare() ([]SeedTopic, error) {
	topics := make([]string, 0, len(b))
	for topic := range b {
		if err := domain.ValidateTopic("topic", topic); err != nil {
			return nil, fmt.Errorf("invalid topic %q: %w", topic, err)
		}
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	out := make([]SeedTopic, 0, len(topics))
	for _, topic := range topics {
		st := SeedTopic{Topic: topic}
		for i, sq := range b[topic] {
			q := domain.Question{
				Text:          sq.Pergunta,
				Options:       sq.Opcoes,
				CorrectAnswer: sq.RespostaCorreta,
				Explanation:   sq.Explicacao,
			}
			if err := q.Validate(); err != nil {
				st.Rejected = append(st.Rejected, fmt.Sprintf("#%d: %v", i, err))
				continue
			}
			st.Questions = append(st.Questions, q)
		}
		out = append(out, st)
	}
	return out, nil
}
