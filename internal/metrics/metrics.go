package metrics

import (
	"net/http"
	"strconv"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/prechecks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// validationsTotal counts verdicts by outcome.
	// Labels: safe, accurate, relevant ("true"/"false")
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "validator",
		Name:      "validations_total",
		Help:      "Total validations by verdict flags",
	}, []string{"safe", "accurate", "relevant"})

	// checkFailuresTotal counts individual check failures.
	// Labels: check (safety, hallucination, relevance, injection, coherence)
	checkFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "validator",
		Name:      "check_failures_total",
		Help:      "Total failures per heuristic check",
	}, []string{"check"})

	confidenceHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "validator",
		Name:      "confidence",
		Help:      "Distribution of verdict confidence scores",
		Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	})
)

// RecordVerdict updates all validator metrics for one verdict.
func RecordVerdict(v models.ValidationVerdict) {
	validationsTotal.WithLabelValues(
		strconv.FormatBool(v.IsSafe),
		strconv.FormatBool(v.IsAccurate),
		strconv.FormatBool(v.IsRelevant),
	).Inc()
	confidenceHistogram.Observe(v.ConfidenceScore)

	for _, check := range FailedChecks(v.Metadata) {
		checkFailuresTotal.WithLabelValues(check).Inc()
	}
}

// FailedChecks lists the checks that fired for a verdict, in execution order.
func FailedChecks(m models.VerdictMetadata) []string {
	failed := []string{}
	if !m.Safety.IsSafe {
		failed = append(failed, prechecks.CheckSafety)
	}
	if m.Hallucination.LikelyHallucination {
		failed = append(failed, prechecks.CheckHallucination)
	}
	if m.RelevanceScore < aggregator.RelevanceThreshold {
		failed = append(failed, prechecks.CheckRelevance)
	}
	if m.Injection.Detected {
		failed = append(failed, prechecks.CheckInjection)
	}
	if !m.Coherence.IsCoherent {
		failed = append(failed, prechecks.CheckCoherence)
	}
	return failed
}

func Handler() http.Handler {
	return promhttp.Handler()
}
