package domain

import (
	"fmt"
	"strings"
)

// AnswerResult is how the learner answered one quiz question.
type AnswerResult struct {
	QuestionText string
	GivenAnswer  string
	WasCorrect   bool
}

// AnalysisRequest carries a finished quiz for diagnosis. An empty Results
// slice is valid and yields a degenerate report.
type AnalysisRequest struct {
	Topic   string
	Results []AnswerResult
}

func (r AnalysisRequest) Validate() ValidationErrors {
	var errs ValidationErrors
	if err := ValidateTopic("topic", r.Topic); err != nil {
		errs = append(errs, *err)
	}
	for i, res := range r.Results {
		if strings.TrimSpace(res.QuestionText) == "" {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("results[%d].pergunta", i)))
		}
	}
	return errs
}

// WrongAnswers counts the results the learner got wrong.
func (r AnalysisRequest) WrongAnswers() int {
	n := 0
	for _, res := range r.Results {
		if !res.WasCorrect {
			n++
		}
	}
	return n
}

// ErrorAnalysis explains a single wrong answer.
type ErrorAnalysis struct {
	QuestionText   string
	LikelyCause    string
	Recommendation string
}

// AnalysisReport is never persisted.
type AnalysisReport struct {
	OverallDiagnosis string
	Errors           []ErrorAnalysis
}
