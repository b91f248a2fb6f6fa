package history

import (
	"sync"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

// History is an append-only verdict log owned by one validator.
// Append and Summarize share one lock, so a summary never observes a half-written append.
type History struct {
	mu       sync.RWMutex
	verdicts []models.ValidationVerdict
}

func New() *History {
	return &History{}
}

// Append stores a private copy of the verdict.
func (h *History) Append(verdict models.ValidationVerdict) {
	stored := verdict.Clone()

	h.mu.Lock()
	h.verdicts = append(h.verdicts, stored)
	h.mu.Unlock()
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.verdicts)
}

// Verdicts returns copies of the stored verdicts in insertion order.
func (h *History) Verdicts() []models.ValidationVerdict {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.ValidationVerdict, len(h.verdicts))
	for i, v := range h.verdicts {
		out[i] = v.Clone()
	}
	return out
}

// Summarize computes the history statistics in a single pass.
func (h *History) Summarize() models.Summary {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := len(h.verdicts)
	if total == 0 {
		return models.Summary{}
	}

	summary := models.Summary{TotalValidations: total}
	confidenceSum := 0.0

	for _, v := range h.verdicts {
		if v.IsSafe {
			summary.SafeResponses++
		}
		if v.IsAccurate {
			summary.AccurateResponses++
		}
		if v.IsRelevant {
			summary.RelevantResponses++
		}
		confidenceSum += v.ConfidenceScore
		summary.IssuesDetected += len(v.Issues)
	}

	n := float64(total)
	summary.SafePercentage = float64(summary.SafeResponses) / n * 100
	summary.AccuratePercentage = float64(summary.AccurateResponses) / n * 100
	summary.RelevantPercentage = float64(summary.RelevantResponses) / n * 100
	summary.AverageConfidence = confidenceSum / n

	return summary
}
