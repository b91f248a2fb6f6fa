package prechecks

import (
	"strings"
)

type RelevanceChecker struct {
}

func NewRelevanceChecker() *RelevanceChecker {
	return &RelevanceChecker{}
}

// Score returns the Jaccard similarity of the response and query word sets after stop-word removal.
// A query with no content words yields a neutral 0.5; that rule wins over the empty-union rule.
func (c *RelevanceChecker) Score(response string, query string) float64 {
	responseWords := contentWords(response)
	queryWords := contentWords(query)

	if len(queryWords) == 0 {
		return 0.5
	}

	intersection := 0
	for word := range queryWords {
		if responseWords[word] {
			intersection++
		}
	}

	union := len(responseWords) + len(queryWords) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func contentWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range fields(strings.ToLower(s)) {
		if !RelevanceStopWords[word] {
			words[word] = true
		}
	}
	return words
}
