package validation

import (
	"testing"

	"quiz-brain/internal/domain"
	"quiz-brain/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }
func boolPtr(b bool) *bool { return &b }

func fieldsOf(errs domain.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateGenerateQuizRequest(t *testing.T) {
	v := NewValidator(50)

	testCases := []struct {
		name   string
		req    dto.GenerateQuizRequest
		fields []string
		codes  []domain.ErrorCode
	}{
		{name: "Valid", req: dto.GenerateQuizRequest{Topic: "Photosynthesis", Count: intPtr(3)}},
		{name: "MissingBoth", req: dto.GenerateQuizRequest{}, fields: []string{"topic", "count"}, codes: []domain.ErrorCode{domain.CodeMissingField, domain.CodeMissingField}},
		{name: "BlankTopic", req: dto.GenerateQuizRequest{Topic: "   ", Count: intPtr(1)}, fields: []string{"topic"}, codes: []domain.ErrorCode{domain.CodeMissingField}},
		{name: "ZeroCount", req: dto.GenerateQuizRequest{Topic: "Optics", Count: intPtr(0)}, fields: []string{"count"}, codes: []domain.ErrorCode{domain.CodeOutOfRange}},
		{name: "NegativeCount", req: dto.GenerateQuizRequest{Topic: "Optics", Count: intPtr(-2)}, fields: []string{"count"}, codes: []domain.ErrorCode{domain.CodeOutOfRange}},
		{name: "CountAboveMax", req: dto.GenerateQuizRequest{Topic: "Optics", Count: intPtr(51)}, fields: []string{"count"}, codes: []domain.ErrorCode{domain.CodeOutOfRange}},
		{name: "TopicWithSlash", req: dto.GenerateQuizRequest{Topic: "bio/cells", Count: intPtr(1)}, fields: []string{"topic"}, codes: []domain.ErrorCode{domain.CodeInvalidFormat}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, errs := v.ValidateGenerateQuizRequest(&tc.req)
			if tc.fields == nil {
				require.Empty(t, errs)
				assert.Equal(t, tc.req.Topic, got.Topic)
				assert.Equal(t, *tc.req.Count, got.Count)
				return
			}
			assert.Nil(t, got)
			assert.Equal(t, tc.fields, fieldsOf(errs))
			for i, e := range errs {
				assert.Equal(t, tc.codes[i], e.Code)
			}
		})
	}
}

func TestValidateGenerateQuizRequest_TrimsTopic(t *testing.T) {
	got, errs := NewValidator(10).ValidateGenerateQuizRequest(&dto.GenerateQuizRequest{Topic: "  Optics ", Count: intPtr(2)})
	require.Empty(t, errs)
	assert.Equal(t, "Optics", got.Topic)
}

func TestValidateAnalyzePerformanceRequest(t *testing.T) {
	v := NewValidator(50)

	t.Run("Valid", func(t *testing.T) {
		got, errs := v.ValidateAnalyzePerformanceRequest(&dto.AnalyzePerformanceRequest{
			Topic: "Photosynthesis",
			Results: []dto.AnswerResultRequest{
				{Pergunta: "Where?", RespostaDada: "Nucleus", Acertou: boolPtr(false)},
				{Pergunta: "What gas?", RespostaDada: "CO2", Acertou: boolPtr(true)},
			},
		})
		require.Empty(t, errs)
		assert.Equal(t, []domain.AnswerResult{
			{QuestionText: "Where?", GivenAnswer: "Nucleus", WasCorrect: false},
			{QuestionText: "What gas?", GivenAnswer: "CO2", WasCorrect: true},
		}, got.Results)
	})

	t.Run("EmptyResultsAccepted", func(t *testing.T) {
		got, errs := v.ValidateAnalyzePerformanceRequest(&dto.AnalyzePerformanceRequest{Topic: "Optics", Results: []dto.AnswerResultRequest{}})
		require.Empty(t, errs)
		assert.NotNil(t, got.Results)
		assert.Empty(t, got.Results)
	})

	t.Run("NilResultsRejected", func(t *testing.T) {
		_, errs := v.ValidateAnalyzePerformanceRequest(&dto.AnalyzePerformanceRequest{Topic: "Optics"})
		assert.Equal(t, []string{"results"}, fieldsOf(errs))
	})

	t.Run("ResultFieldsRequired", func(t *testing.T) {
		_, errs := v.ValidateAnalyzePerformanceRequest(&dto.AnalyzePerformanceRequest{
			Topic: "Optics",
			Results: []dto.AnswerResultRequest{
				{Pergunta: "", Acertou: boolPtr(true)},
				{Pergunta: "Q"},
			},
		})
		assert.Equal(t, []string{"results[0].pergunta", "results[1].acertou"}, fieldsOf(errs))
	})
}
