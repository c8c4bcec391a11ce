package quizgen

import (
	"bytes"
	"strings"
	"text/template"
)

// NoExclusionsMarker stands in for an empty exclusion list so the model
// never sees an empty section.
const NoExclusionsMarker = "None."

var quizPromptTmpl = template.Must(template.New("quiz").Parse(
	`Generate a quiz with {{.Count}} multiple-choice questions about "{{.Topic}}".

AUDIENCE AND DIFFICULTY:
- Upper-secondary (high school) level.
- Difficulty between 6 and 9 on a scale of 10.
- Write questions as classroom exercises: calculations and applied problems for exact sciences, interpretation and analysis for the humanities.
- Write every question, option and explanation in {{.Language}}.

RULES:
- Randomize the position of the correct answer across the options; do not favor any position.
- Vary the length of the options so the correct answer cannot be spotted by its length.
- Every question must be original.
- "respostaCorreta" must repeat the exact text of one of the "opcoes".
- Each "explicacao" must justify the correct answer.

IMPORTANT: do NOT generate questions identical or semantically similar to the ones below.
ALREADY ASKED:
{{.Exclusions}}
`))

// PromptData holds the values rendered into the quiz prompt.
type PromptData struct {
	Topic      string
	Count      int
	Language   string
	Exclusions string
}

// BuildQuizPrompt renders the generation prompt. The same inputs always
// produce the same prompt.
func BuildQuizPrompt(topic string, count int, language string, exclusions []string) (string, error) {
	var buf bytes.Buffer
	err := quizPromptTmpl.Execute(&buf, PromptData{
		Topic:      topic,
		Count:      count,
		Language:   language,
		Exclusions: formatExclusions(exclusions),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatExclusions(exclusions []string) string {
	if len(exclusions) == 0 {
		return NoExclusionsMarker
	}
	lines := make([]string, len(exclusions))
	for i, e := range exclusions {
		lines[i] = "- " + e
	}
	return strings.Join(lines, "\n")
}
