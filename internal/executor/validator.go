package executor

//go:generate mockgen -source=validator.go -destination=mocks/mocks.go -package=mocks

import (
	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/history"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/metrics"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/prechecks"
	"github.com/rs/zerolog"
)

// CheckRunner runs every heuristic check against one input
type CheckRunner interface {
	Run(input models.ValidationInput) models.CheckResults
}

// Aggregator folds check results into a verdict
type Aggregator interface {
	Aggregate(results models.CheckResults) models.ValidationVerdict
}

// HistoryStore keeps the verdicts produced by one validator
type HistoryStore interface {
	Append(verdict models.ValidationVerdict)
	Summarize() models.Summary
}

const DefaultAlertThreshold = 0.7

type Validator struct {
	level          models.ValidationLevel
	checks         CheckRunner
	aggregator     Aggregator
	history        HistoryStore
	alertThreshold float64
	logger         *zerolog.Logger
}

func NewValidator(
	level models.ValidationLevel,
	checks CheckRunner,
	aggregator Aggregator,
	history HistoryStore,
	alertThreshold float64,
	logger *zerolog.Logger,
) *Validator {
	return &Validator{
		level:          level,
		checks:         checks,
		aggregator:     aggregator,
		history:        history,
		alertThreshold: alertThreshold,
		logger:         logger,
	}
}

// NewDefaultValidator builds a validator with the standard checks, penalties and an empty history.
func NewDefaultValidator(level models.ValidationLevel, logger *zerolog.Logger) *Validator {
	return NewValidator(
		level,
		prechecks.NewStageRunner(),
		aggregator.NewAggregator(aggregator.DefaultPenalties, logger),
		history.New(),
		DefaultAlertThreshold,
		logger,
	)
}

func (v *Validator) Level() models.ValidationLevel {
	return v.level
}

// Validate runs all checks, aggregates them into one verdict and records it before returning.
// It never fails: every finding is reported as data on the verdict.
func (v *Validator) Validate(input models.ValidationInput) models.ValidationVerdict {
	if input.RequestID == "" {
		input.RequestID = uuid.NewString()
	}

	results := v.checks.Run(input)
	verdict := v.aggregator.Aggregate(results)

	verdict.Metadata = models.VerdictMetadata{
		RequestID:       input.RequestID,
		Query:           input.Query,
		ResponseLength:  len([]rune(input.Response)),
		ValidationLevel: v.level,
		Safety:          results.Safety,
		Hallucination:   results.Hallucination,
		RelevanceScore:  results.RelevanceScore,
		Injection:       results.Injection,
		Coherence:       results.Coherence,
		Durations:       results.Durations,
	}

	v.history.Append(verdict)
	metrics.RecordVerdict(verdict)

	v.logger.
		Info().
		Str("requestID", input.RequestID).
		Bool("is_safe", verdict.IsSafe).
		Float64("confidence", verdict.ConfidenceScore).
		Int("issues", len(verdict.Issues)).
		Msg("validation complete")

	if !verdict.IsSafe || verdict.ConfidenceScore < v.alertThreshold {
		v.logger.
			Warn().
			Str("requestID", input.RequestID).
			Strs("issues", verdict.Issues).
			Float64("confidence", verdict.ConfidenceScore).
			Float64("threshold", v.alertThreshold).
			Msg("response flagged by validator")
	}

	return verdict
}

func (v *Validator) Summarize() models.Summary {
	return v.history.Summarize()
}
