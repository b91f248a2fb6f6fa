package aggregator

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/rs/zerolog"
)

// Penalties applied to a starting confidence of 1.0.
type Penalties struct {
	Safety        float64
	Hallucination float64
	Relevance     float64
	Injection     float64
	Coherence     float64
}

var DefaultPenalties = Penalties{
	Safety:        0.3,
	Hallucination: 0.2,
	Relevance:     0.2,
	Injection:     0.4,
	Coherence:     0.1,
}

const RelevanceThreshold = 0.5

const (
	IssueHallucination      = "Potential hallucination detected"
	SuggestionHallucination = "Cross-reference response with source data"
	SuggestionRelevance     = "Response may not answer the query"
	IssueInjection          = "Potential prompt injection detected in query"
	SuggestionInjection     = "Sanitize user input before processing"
)

type Aggregator struct {
	Penalties Penalties
	logger    *zerolog.Logger
}

func NewAggregator(penalties Penalties, logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		Penalties: penalties,
		logger:    logger,
	}
}

// Aggregate folds check results into a verdict. Findings are appended in check order
// (safety, hallucination, relevance, injection, coherence) and confidence is clamped last.
// Metadata is left for the caller to fill.
func (a *Aggregator) Aggregate(results models.CheckResults) models.ValidationVerdict {
	verdict := models.ValidationVerdict{
		IsSafe:      true,
		IsAccurate:  true,
		IsRelevant:  true,
		Issues:      []string{},
		Suggestions: []string{},
	}
	confidence := 1.0

	if !results.Safety.IsSafe {
		verdict.IsSafe = false
		verdict.Issues = append(verdict.Issues, results.Safety.Issues...)
		confidence -= a.Penalties.Safety
	}

	if results.Hallucination.LikelyHallucination {
		verdict.IsAccurate = false
		verdict.Issues = append(verdict.Issues, IssueHallucination)
		verdict.Suggestions = append(verdict.Suggestions, SuggestionHallucination)
		confidence -= a.Penalties.Hallucination
	}

	if results.RelevanceScore < RelevanceThreshold {
		verdict.IsRelevant = false
		verdict.Issues = append(verdict.Issues, fmt.Sprintf("Low relevance score: %.2f", results.RelevanceScore))
		verdict.Suggestions = append(verdict.Suggestions, SuggestionRelevance)
		confidence -= a.Penalties.Relevance
	}

	if results.Injection.Detected {
		verdict.IsSafe = false
		verdict.Issues = append(verdict.Issues, IssueInjection)
		verdict.Suggestions = append(verdict.Suggestions, SuggestionInjection)
		confidence -= a.Penalties.Injection
	}

	if !results.Coherence.IsCoherent {
		verdict.Issues = append(verdict.Issues, results.Coherence.Issues...)
		confidence -= a.Penalties.Coherence
	}

	verdict.ConfidenceScore = clamp(confidence)

	a.logger.
		Debug().
		Float64("confidence", verdict.ConfidenceScore).
		Int("issues", len(verdict.Issues)).
		Msg("aggregation complete")
	return verdict
}

func clamp(confidence float64) float64 {
	return max(0.0, min(1.0, confidence))
}
