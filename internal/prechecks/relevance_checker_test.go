package prechecks

import (
	"math"
	"testing"
)

func TestRelevanceChecker(t *testing.T) {
	checker := NewRelevanceChecker()

	tests := []struct {
		name     string
		response string
		query    string
		score    float64
	}{
		{
			name:     "empty query is neutral",
			response: "anything at all",
			query:    "",
			score:    0.5,
		},
		{
			name:     "stop-word query is neutral even with empty response",
			response: "",
			query:    "the a an",
			score:    0.5,
		},
		{
			name:     "partial overlap",
			response: "shipping takes 5 days",
			query:    "shipping policy",
			score:    1.0 / 5.0,
		},
		{
			name:     "empty response",
			response: "",
			query:    "policy",
			score:    0.0,
		},
		{
			name:     "identical ignoring case",
			response: "Refund Policy",
			query:    "refund policy",
			score:    1.0,
		},
		{
			name:     "stop words do not count",
			response: "the refund and the policy",
			query:    "refund policy",
			score:    1.0,
		},
		{
			name:     "duplicates collapse",
			response: "refund refund refund",
			query:    "refund window",
			score:    0.5,
		},
		{
			name:     "unit separator splits words",
			response: "shipping\x1fpolicy",
			query:    "shipping policy",
			score:    1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.Score(tt.response, tt.query)
			if math.Abs(got-tt.score) > 1e-9 {
				t.Errorf("Score: %f, want %f", got, tt.score)
			}
		})
	}
}
