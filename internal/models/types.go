package models

import (
	"errors"
	"strings"
	"time"
)

type ValidationLevel string

const (
	LevelBasic    ValidationLevel = "basic"
	LevelStandard ValidationLevel = "standard"
	LevelStrict   ValidationLevel = "strict"
)

var ErrUnknownLevel = errors.New("unknown validation level")

// ParseValidationLevel maps a case-insensitive level name to a ValidationLevel.
// An empty name selects LevelStandard.
func ParseValidationLevel(name string) (ValidationLevel, error) {
	switch ValidationLevel(strings.ToLower(strings.TrimSpace(name))) {
	case "", LevelStandard:
		return LevelStandard, nil
	case LevelBasic:
		return LevelBasic, nil
	case LevelStrict:
		return LevelStrict, nil
	default:
		return "", ErrUnknownLevel
	}
}

type EventType string

const (
	EventTypeAgentResponse EventType = "agent_response"
	EventTypeAgentError    EventType = "agent_error"
)

type Agent struct {
	Name    string `json:"name" validate:"max=256"`
	Type    string `json:"type" validate:"max=256"`
	Version string `json:"version" validate:"max=64"`
}

type Interaction struct {
	UserQuery string         `json:"user_query" validate:"max=20000"`
	Context   map[string]any `json:"context,omitempty"`
	Answer    string         `json:"answer" validate:"max=200000"`
}

// Input message

type ValidationRequest struct {
	EventID     string      `json:"event_id" validate:"max=128"`
	EventType   EventType   `json:"event_type" validate:"omitempty,oneof=agent_response agent_error"`
	Agent       Agent       `json:"agent"`
	Interaction Interaction `json:"interaction"`
}

// ToInput normalizes a wire request into the validator's input triple.
func (r ValidationRequest) ToInput() ValidationInput {
	return ValidationInput{
		RequestID: r.EventID,
		Response:  r.Interaction.Answer,
		Query:     r.Interaction.UserQuery,
		Context:   r.Interaction.Context,
	}
}

// Normalized internal object
type ValidationInput struct {
	RequestID string
	Response  string
	Query     string
	Context   map[string]any
}

// Per-check records

type SafetyResult struct {
	IsSafe          bool     `json:"is_safe"`
	Issues          []string `json:"issues"`
	CheckedPatterns int      `json:"checked_patterns"`
}

type HallucinationResult struct {
	LikelyHallucination bool     `json:"likely_hallucination"`
	Indicators          []string `json:"indicators"`
	Confidence          float64  `json:"confidence"`
}

type InjectionResult struct {
	Detected   bool     `json:"detected"`
	Patterns   []string `json:"patterns"`
	Confidence float64  `json:"confidence"`
}

type CoherenceResult struct {
	IsCoherent    bool     `json:"is_coherent"`
	Issues        []string `json:"issues"`
	SentenceCount int      `json:"sentence_count"`
	WordCount     int      `json:"word_count"`
}

// CheckResults holds the raw output of one run of every check.
type CheckResults struct {
	Safety         SafetyResult
	Hallucination  HallucinationResult
	RelevanceScore float64
	Injection      InjectionResult
	Coherence      CoherenceResult
	Durations      map[string]time.Duration
}

type VerdictMetadata struct {
	RequestID       string                   `json:"request_id"`
	Query           string                   `json:"query"`
	ResponseLength  int                      `json:"response_length"`
	ValidationLevel ValidationLevel          `json:"validation_level"`
	Safety          SafetyResult             `json:"safety"`
	Hallucination   HallucinationResult      `json:"hallucination"`
	RelevanceScore  float64                  `json:"relevance_score"`
	Injection       InjectionResult          `json:"injection"`
	Coherence       CoherenceResult          `json:"coherence"`
	Durations       map[string]time.Duration `json:"durations_ns,omitempty"`
}

// Final output of one validation
type ValidationVerdict struct {
	IsSafe          bool            `json:"is_safe"`
	IsAccurate      bool            `json:"is_accurate"`
	IsRelevant      bool            `json:"is_relevant"`
	ConfidenceScore float64         `json:"confidence_score"`
	Issues          []string        `json:"issues"`
	Suggestions     []string        `json:"suggestions"`
	Metadata        VerdictMetadata `json:"metadata"`
}

// Clone returns a deep copy so stored verdicts cannot be changed through caller-held slices.
func (v ValidationVerdict) Clone() ValidationVerdict {
	out := v
	out.Issues = append([]string{}, v.Issues...)
	out.Suggestions = append([]string{}, v.Suggestions...)
	out.Metadata.Safety.Issues = append([]string{}, v.Metadata.Safety.Issues...)
	out.Metadata.Hallucination.Indicators = append([]string{}, v.Metadata.Hallucination.Indicators...)
	out.Metadata.Injection.Patterns = append([]string{}, v.Metadata.Injection.Patterns...)
	out.Metadata.Coherence.Issues = append([]string{}, v.Metadata.Coherence.Issues...)
	if v.Metadata.Durations != nil {
		out.Metadata.Durations = make(map[string]time.Duration, len(v.Metadata.Durations))
		for k, d := range v.Metadata.Durations {
			out.Metadata.Durations[k] = d
		}
	}
	return out
}
