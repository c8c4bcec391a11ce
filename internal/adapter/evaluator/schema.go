package evaluator

import "quiz-brain/internal/llm"

// AnalysisSchema is the output contract for performance analysis.
var AnalysisSchema = &llm.Schema{
	Name:        "performance-analysis",
	Description: "Diagnosis of a learner's mistakes in a quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"analise": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"diagnosticoGeral": map[string]any{
						"type":        "string",
						"description": "Encouraging overall diagnosis addressed to the learner",
					},
					"analiseDosErros": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"pergunta":      map[string]any{"type": "string"},
								"causaProvavel": map[string]any{"type": "string"},
								"recomendacao":  map[string]any{"type": "string"},
							},
							"required": []any{"pergunta", "causaProvavel", "recomendacao"},
						},
					},
				},
				"required": []any{"diagnosticoGeral", "analiseDosErros"},
			},
		},
		"required": []any{"analise"},
	},
}

type analysisOutput struct {
	Analise struct {
		DiagnosticoGeral string `json:"diagnosticoGeral"`
		AnaliseDosErros  []struct {
			Pergunta      string `json:"pergunta"`
			CausaProvavel string `json:"causaProvavel"`
			Recomendacao  string `json:"recomendacao"`
		} `json:"analiseDosErros"`
	} `json:"analise"`
}
