package prechecks

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

type SafetyChecker struct {
	keywords *phraseMatcher
}

func NewSafetyChecker() *SafetyChecker {
	return &SafetyChecker{
		keywords: newPhraseMatcher(UnsafeKeywords),
	}
}

// Check scans a response for unsafe keywords and PII-shaped substrings.
// Keywords match anywhere inside the lower-cased text, so "hackathon" also trips "hack".
func (c *SafetyChecker) Check(response string) models.SafetyResult {
	issues := []string{}

	for _, keyword := range c.keywords.Found(strings.ToLower(response)) {
		issues = append(issues, fmt.Sprintf("Unsafe keyword detected: '%s'", keyword))
	}

	normalized := normalizeSpace(response)
	for _, pii := range PIIPatterns {
		if pii.Pattern.MatchString(normalized) {
			issues = append(issues, pii.Issue)
		}
	}

	return models.SafetyResult{
		IsSafe:          len(issues) == 0,
		Issues:          issues,
		CheckedPatterns: len(UnsafeKeywords) + len(PIIPatterns),
	}
}
