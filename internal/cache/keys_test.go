package cache

import "testing"

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		name        string
		parts       []string
		expectedKey string
	}{
		{
			name:        "no parts",
			parts:       nil,
			expectedKey: "quizbrain",
		},
		{
			name:        "single part",
			parts:       []string{"health"},
			expectedKey: "quizbrain:health",
		},
		{
			name:        "multiple parts",
			parts:       []string{"questions", "Photosynthesis"},
			expectedKey: "quizbrain:questions:Photosynthesis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateKey(tt.parts...); got != tt.expectedKey {
				t.Errorf("GenerateKey() = %v, want %v", got, tt.expectedKey)
			}
		})
	}
}

func TestQuestionsKey(t *testing.T) {
	if got := QuestionsKey("World War II"); got != "quizbrain:questions:World War II" {
		t.Errorf("QuestionsKey() = %v", got)
	}
}
