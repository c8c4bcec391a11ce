package quizgen

import "quiz-brain/internal/llm"

// QuizSchema is the output contract for quiz generation. Option count and
// answer membership are left to the caller, which drops failing questions
// instead of failing the whole response.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A list of multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quiz": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"pergunta": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"opcoes": map[string]any{
							"type":        "array",
							"description": "The answer options",
							"items":       map[string]any{"type": "string"},
						},
						"respostaCorreta": map[string]any{
							"type":        "string",
							"description": "The correct option, copied verbatim from opcoes",
						},
						"explicacao": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right",
						},
					},
					"required": []any{"pergunta", "opcoes", "respostaCorreta", "explicacao"},
				},
			},
		},
		"required": []any{"quiz"},
	},
}

// quizOutput mirrors QuizSchema.
type quizOutput struct {
	Quiz []questionOutput `json:"quiz"`
}

type questionOutput struct {
	Pergunta        string   `json:"pergunta"`
	Opcoes          []string `json:"opcoes"`
	RespostaCorreta string   `json:"respostaCorreta"`
	Explicacao      string   `json:"explicacao"`
}
