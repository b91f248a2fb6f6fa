package prechecks

import (
	"strings"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

const (
	minResponseChars     = 10
	maxResponseChars     = 5000
	minSentenceWords     = 3.0
	maxSentenceWords     = 50.0
	repetitionMinWords   = 5
	repetitionWindowSize = 3
)

type CoherenceChecker struct {
}

func NewCoherenceChecker() *CoherenceChecker {
	return &CoherenceChecker{}
}

// Check scores structural well-formedness: length bounds, repeated 3-word windows
// and average sentence length. Lengths are counted in characters, not bytes.
func (c *CoherenceChecker) Check(response string) models.CoherenceResult {
	issues := []string{}

	if utf8.RuneCountInString(strings.TrimFunc(response, isSpace)) < minResponseChars {
		issues = append(issues, "Response too short (< 10 characters)")
	} else if utf8.RuneCountInString(response) > maxResponseChars {
		issues = append(issues, "Response very long (> 5000 characters)")
	}

	words := fields(response)
	if len(words) > repetitionMinWords && hasRepeatedWindow(words, repetitionWindowSize) {
		issues = append(issues, "Repeated phrases detected")
	}

	sentences := strings.Split(response, ".")
	if len(sentences) > 1 {
		total := 0
		for _, sentence := range sentences {
			total += len(fields(sentence))
		}

		avg := float64(total) / float64(len(sentences))
		if avg < minSentenceWords {
			issues = append(issues, "Very short sentences (avg < 3 words)")
		} else if avg > maxSentenceWords {
			issues = append(issues, "Very long sentences (avg > 50 words)")
		}
	}

	return models.CoherenceResult{
		IsCoherent:    len(issues) == 0,
		Issues:        issues,
		SentenceCount: len(sentences),
		WordCount:     len(words),
	}
}

func hasRepeatedWindow(words []string, size int) bool {
	seen := make(map[string]bool, len(words))
	for i := 0; i+size <= len(words); i++ {
		window := strings.Join(words[i:i+size], " ")
		if seen[window] {
			return true
		}
		seen[window] = true
	}
	return false
}
