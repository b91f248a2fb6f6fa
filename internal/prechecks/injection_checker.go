package prechecks

import (
	"strings"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

type InjectionChecker struct {
}

func NewInjectionChecker() *InjectionChecker {
	return &InjectionChecker{}
}

// Check looks for manipulation phrasing in the user query.
// Confidence is the matched share of all patterns and is reported even when nothing matched.
func (c *InjectionChecker) Check(query string) models.InjectionResult {
	lowered := normalizeSpace(strings.ToLower(query))
	matched := []string{}

	for i, re := range injectionRegexps {
		if re.MatchString(lowered) {
			matched = append(matched, InjectionPatterns[i])
		}
	}

	return models.InjectionResult{
		Detected:   len(matched) > 0,
		Patterns:   matched,
		Confidence: float64(len(matched)) / float64(len(InjectionPatterns)),
	}
}
