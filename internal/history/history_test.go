package history

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

func TestSummarize_Empty(t *testing.T) {
	h := New()

	got := h.Summarize().Map()

	if len(got) != 1 {
		t.Fatalf("expected only total_validations, got %v", got)
	}
	if got["total_validations"] != 0 {
		t.Errorf("total_validations: %v, want 0", got["total_validations"])
	}

	data, err := json.Marshal(h.Summarize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"total_validations":0}` {
		t.Errorf("json: %s", data)
	}
}

func TestSummarize(t *testing.T) {
	h := New()

	h.Append(models.ValidationVerdict{IsSafe: true, IsAccurate: true, IsRelevant: false, ConfidenceScore: 0.8, Issues: []string{"Low relevance score: 0.20"}})
	h.Append(models.ValidationVerdict{IsSafe: true, IsAccurate: false, IsRelevant: false, ConfidenceScore: 0.6, Issues: []string{"a", "b"}})
	h.Append(models.ValidationVerdict{IsSafe: false, IsAccurate: true, IsRelevant: true, ConfidenceScore: 0.1, Issues: []string{"c", "d", "e"}})
	h.Append(models.ValidationVerdict{IsSafe: true, IsAccurate: true, IsRelevant: true, ConfidenceScore: 1.0, Issues: []string{}})

	s := h.Summarize()

	if s.TotalValidations != 4 {
		t.Errorf("TotalValidations: %d, want 4", s.TotalValidations)
	}
	if s.SafeResponses != 3 || s.SafePercentage != 75 {
		t.Errorf("safe: %d (%f%%), want 3 (75%%)", s.SafeResponses, s.SafePercentage)
	}
	if s.AccurateResponses != 3 || s.AccuratePercentage != 75 {
		t.Errorf("accurate: %d (%f%%), want 3 (75%%)", s.AccurateResponses, s.AccuratePercentage)
	}
	if s.RelevantResponses != 2 || s.RelevantPercentage != 50 {
		t.Errorf("relevant: %d (%f%%), want 2 (50%%)", s.RelevantResponses, s.RelevantPercentage)
	}
	if math.Abs(s.AverageConfidence-0.625) > 1e-9 {
		t.Errorf("AverageConfidence: %f, want 0.625", s.AverageConfidence)
	}
	if s.IssuesDetected != 6 {
		t.Errorf("IssuesDetected: %d, want 6", s.IssuesDetected)
	}

	if len(s.Map()) != 9 {
		t.Errorf("expected 9 summary keys, got %d", len(s.Map()))
	}
}

func TestAppend_StoresCopy(t *testing.T) {
	h := New()

	issues := []string{"original"}
	h.Append(models.ValidationVerdict{Issues: issues})
	issues[0] = "mutated"

	stored := h.Verdicts()
	if stored[0].Issues[0] != "original" {
		t.Errorf("stored verdict changed through caller slice: %q", stored[0].Issues)
	}

	stored[0].Issues[0] = "mutated again"
	if h.Verdicts()[0].Issues[0] != "original" {
		t.Error("stored verdict changed through returned slice")
	}
}

func TestAppend_PreservesOrder(t *testing.T) {
	h := New()
	for _, id := range []string{"a", "b", "c"} {
		h.Append(models.ValidationVerdict{Metadata: models.VerdictMetadata{RequestID: id}})
	}

	got := h.Verdicts()
	for i, id := range []string{"a", "b", "c"} {
		if got[i].Metadata.RequestID != id {
			t.Errorf("position %d: %s, want %s", i, got[i].Metadata.RequestID, id)
		}
	}
}

func TestAppend_Concurrent(t *testing.T) {
	h := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Append(models.ValidationVerdict{IsSafe: true, ConfidenceScore: 0.5})
			_ = h.Summarize()
		}()
	}
	wg.Wait()

	s := h.Summarize()
	if s.TotalValidations != 50 {
		t.Errorf("TotalValidations: %d, want 50", s.TotalValidations)
	}
	if s.SafePercentage != 100 {
		t.Errorf("SafePercentage: %f, want 100", s.SafePercentage)
	}
}
