package prechecks

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"
)

// Terms that signal jailbreak/override attempts or unsafe instructions in a response.
// Matched as lower-case substrings.
var UnsafeKeywords = []string{
	"hack", "exploit", "bypass", "jailbreak",
	"ignore previous", "forget instructions",
	"disregard", "override",
}

type PIIPattern struct {
	Issue   string
	Pattern *regexp.Regexp
}

// PIIPatterns are evaluated against the original-case response text.
var PIIPatterns = []PIIPattern{
	{
		Issue:   "Potential credit card number detected",
		Pattern: regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`),
	},
	{
		Issue:   "Email address detected in response",
		Pattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
	},
	{
		Issue:   "Potential SSN detected",
		Pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	},
}

var AbsolutePhrases = []string{
	"always", "never", "definitely", "certainly",
	"absolutely", "guaranteed", "without a doubt",
}

var (
	numericToken    = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})*(?:\.\d+)?\b`)
	properNounSpan  = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
	maxBareNumbers  = 3
	namesContextKey = "names"
)

var RelevanceStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
}

// InjectionPatterns are matched in order against the lower-cased query.
// The pattern source is what gets reported, so the order and text are part of the output.
var InjectionPatterns = []string{
	`ignore\s+(?:previous|above|prior)`,
	`disregard\s+(?:previous|above|prior)`,
	`forget\s+(?:previous|above|prior|everything)`,
	`system:?\s*`,
	`<\|.*?\|>`,
	`###\s*(?:instruction|system)`,
	`act\s+as\s+(?:if|though|a)`,
	`pretend\s+(?:you|to\s+be)`,
	`simulate\s+(?:a|an|being)`,
}

var injectionRegexps = compileAll(InjectionPatterns)

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// phraseMatcher reports which entries of a fixed phrase list occur in a text.
type phraseMatcher struct {
	phrases []string
	matcher *ahocorasick.Matcher
}

func newPhraseMatcher(phrases []string) *phraseMatcher {
	return &phraseMatcher{
		phrases: phrases,
		matcher: ahocorasick.NewStringMatcher(phrases),
	}
}

// Found returns the phrases present in text, in list order.
func (m *phraseMatcher) Found(text string) []string {
	hits := m.matcher.MatchThreadSafe([]byte(text))
	if len(hits) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(hits))
	for _, hit := range hits {
		seen[hit] = true
	}

	found := make([]string, 0, len(hits))
	for i, phrase := range m.phrases {
		if seen[i] {
			found = append(found, phrase)
		}
	}
	return found
}

// isSpace treats the ASCII file, group, record and unit separators as whitespace on top of unicode.IsSpace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// normalizeSpace rewrites every whitespace rune to a plain space so the ASCII-only \s in the
// patterns also covers non-breaking spaces, vertical tabs and other separators.
func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func fields(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}
