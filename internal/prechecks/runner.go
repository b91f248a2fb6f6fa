package prechecks

import (
	"time"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

// StageRunner runs every check against one input. Checks run in a fixed order on the
// calling goroutine; none of them touch shared state.
type StageRunner struct {
	Safety        SafetyCheck
	Hallucination HallucinationCheck
	Relevance     RelevanceCheck
	Injection     InjectionCheck
	Coherence     CoherenceCheck
}

func NewStageRunner() *StageRunner {
	return &StageRunner{
		Safety:        NewSafetyChecker(),
		Hallucination: NewHallucinationChecker(),
		Relevance:     NewRelevanceChecker(),
		Injection:     NewInjectionChecker(),
		Coherence:     NewCoherenceChecker(),
	}
}

func (r *StageRunner) Run(input models.ValidationInput) models.CheckResults {
	results := models.CheckResults{
		Durations: make(map[string]time.Duration, 5),
	}

	timed(results.Durations, CheckSafety, func() {
		results.Safety = r.Safety.Check(input.Response)
	})
	timed(results.Durations, CheckHallucination, func() {
		results.Hallucination = r.Hallucination.Check(input.Response, input.Query, input.Context)
	})
	timed(results.Durations, CheckRelevance, func() {
		results.RelevanceScore = r.Relevance.Score(input.Response, input.Query)
	})
	timed(results.Durations, CheckInjection, func() {
		results.Injection = r.Injection.Check(input.Query)
	})
	timed(results.Durations, CheckCoherence, func() {
		results.Coherence = r.Coherence.Check(input.Response)
	})

	return results
}
