package models

import "encoding/json"

// Summary aggregates a validation history.
type Summary struct {
	TotalValidations   int
	SafeResponses      int
	SafePercentage     float64
	AccurateResponses  int
	AccuratePercentage float64
	RelevantResponses  int
	RelevantPercentage float64
	AverageConfidence  float64
	IssuesDetected     int
}

// Map renders the summary with its wire keys. An empty history carries only total_validations.
func (s Summary) Map() map[string]any {
	if s.TotalValidations == 0 {
		return map[string]any{"total_validations": 0}
	}

	return map[string]any{
		"total_validations":   s.TotalValidations,
		"safe_responses":      s.SafeResponses,
		"safe_percentage":     s.SafePercentage,
		"accurate_responses":  s.AccurateResponses,
		"accurate_percentage": s.AccuratePercentage,
		"relevant_responses":  s.RelevantResponses,
		"relevant_percentage": s.RelevantPercentage,
		"average_confidence":  s.AverageConfidence,
		"issues_detected":     s.IssuesDetected,
	}
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}
