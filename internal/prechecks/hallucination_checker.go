package prechecks

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

type HallucinationChecker struct {
	absolutes *phraseMatcher
}

func NewHallucinationChecker() *HallucinationChecker {
	return &HallucinationChecker{
		absolutes: newPhraseMatcher(AbsolutePhrases),
	}
}

// Check flags overconfident or unexplained specific claims made without supporting context.
// An empty or nil context counts as absent.
func (c *HallucinationChecker) Check(response string, query string, context map[string]any) models.HallucinationResult {
	indicators := []string{}
	hasContext := len(context) > 0

	if !hasContext {
		for _, phrase := range c.absolutes.Found(strings.ToLower(response)) {
			indicators = append(indicators, fmt.Sprintf("Absolute statement without context: '%s'", phrase))
		}

		if numbers := numericToken.FindAllString(response, -1); len(numbers) > maxBareNumbers {
			indicators = append(indicators, fmt.Sprintf("Multiple specific numbers (%d) without context", len(numbers)))
		}
	}

	if properNounSpan.MatchString(normalizeSpace(response)) {
		if _, hasNames := context[namesContextKey]; !hasContext || !hasNames {
			indicators = append(indicators, "Specific names mentioned without context validation")
		}
	}

	return models.HallucinationResult{
		LikelyHallucination: len(indicators) > 0,
		Indicators:          indicators,
		Confidence:          1.0 - float64(len(indicators))*0.2,
	}
}
