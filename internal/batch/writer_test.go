package batch

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

type stubSummarizer struct {
	summary models.Summary
}

func (s stubSummarizer) Summarize() models.Summary {
	return s.summary
}

func TestNewWriter_InvalidFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "csv", stubSummarizer{}, newTestLogger()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, FormatJSONL, stubSummarizer{}, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	verdict := models.ValidationVerdict{IsSafe: true, IsAccurate: true, IsRelevant: true, ConfidenceScore: 1}
	writer.Write(Result{LineNumber: 1, ID: "a", Verdict: &verdict})
	writer.Write(Result{LineNumber: 2, Error: "line 2: invalid JSON"})
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []map[string]any
	for scanner.Scan() {
		var line map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			t.Fatalf("output is not JSONL: %v", err)
		}
		lines = append(lines, line)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if _, ok := lines[0]["verdict"]; !ok {
		t.Error("expected verdict on first line")
	}
	if _, ok := lines[1]["verdict"]; ok {
		t.Error("error line should not carry a verdict")
	}
	if lines[1]["error"] != "line 2: invalid JSON" {
		t.Errorf("unexpected error field: %v", lines[1]["error"])
	}
}

func TestWriter_Summary(t *testing.T) {
	var buf bytes.Buffer
	summary := models.Summary{TotalValidations: 4, SafeResponses: 2, SafePercentage: 50, AverageConfidence: 0.575}

	writer, err := NewWriter(&buf, FormatSummary, stubSummarizer{summary: summary}, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	writer.Write(Result{LineNumber: 1, ID: "a", Verdict: &models.ValidationVerdict{}})
	writer.Write(Result{LineNumber: 2, Error: "bad"})
	if buf.Len() != 0 {
		t.Error("summary format should not write per-record output")
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("summary is not JSON: %v", err)
	}
	if doc["total_validations"] != 4.0 {
		t.Errorf("expected total 4, got %v", doc["total_validations"])
	}
	if doc["failed_records"] != 1.0 {
		t.Errorf("expected 1 failed record, got %v", doc["failed_records"])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented summary")
	}
}
