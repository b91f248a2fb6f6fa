package prechecks

import (
	"time"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

// Check names used as metadata keys and metric labels.
const (
	CheckSafety        = "safety"
	CheckHallucination = "hallucination"
	CheckRelevance     = "relevance"
	CheckInjection     = "injection"
	CheckCoherence     = "coherence"
)

type SafetyCheck interface {
	Check(response string) models.SafetyResult
}

type HallucinationCheck interface {
	Check(response string, query string, context map[string]any) models.HallucinationResult
}

type RelevanceCheck interface {
	Score(response string, query string) float64
}

type InjectionCheck interface {
	Check(query string) models.InjectionResult
}

type CoherenceCheck interface {
	Check(response string) models.CoherenceResult
}

func timed(durations map[string]time.Duration, name string, fn func()) {
	start := time.Now()
	fn()
	durations[name] = time.Since(start)
}
