package evaluator

import (
	"fmt"
	"strings"

	"quiz-brain/internal/domain"
)

// NoAnswersMarker replaces the results block when nothing was submitted.
const NoAnswersMarker = "No answers were submitted."

// BuildAnalysisPrompt renders the diagnosis prompt for a finished quiz.
// An empty learner name falls back to a generic student.
func BuildAnalysisPrompt(req domain.AnalysisRequest, learner, language string) string {
	subject, addressee := "A student", "the student"
	if learner != "" {
		subject, addressee = learner, learner
	}
	return fmt.Sprintf(`You are an experienced and encouraging tutor. %s just finished a quiz about "%s".
Analyze the MISTAKES in the results below.

For every wrong answer:
- identify the most likely cause (for example a conceptual confusion, a calculation slip, or a misread statement);
- give a concrete study recommendation.

Then write one overall diagnosis addressed to %s that is honest and encouraging.
Write everything in %s.

QUIZ RESULTS:
%s
`, subject, req.Topic, addressee, language, formatResults(req.Results))
}

func formatResults(results []domain.AnswerResult) string {
	if len(results) == 0 {
		return NoAnswersMarker
	}
	blocks := make([]string, len(results))
	for i, r := range results {
		outcome := "Wrong"
		if r.WasCorrect {
			outcome = "Correct"
		}
		blocks[i] = fmt.Sprintf("Question: %q\nGiven answer: %q\nResult: %s", r.QuestionText, r.GivenAnswer, outcome)
	}
	return strings.Join(blocks, "\n\n")
}
