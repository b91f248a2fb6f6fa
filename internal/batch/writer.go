package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

type Summarizer interface {
	Summarize() models.Summary
}

// Writer emits one JSON line per result, or a single summary document on Close.
type Writer struct {
	out        io.Writer
	format     string
	summarizer Summarizer
	encoder    *json.Encoder
	failed     int
	logger     *zerolog.Logger
}

func NewWriter(out io.Writer, format string, summarizer Summarizer, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported output format %q: supported formats are jsonl, summary", format)
	}

	return &Writer{
		out:        out,
		format:     format,
		summarizer: summarizer,
		encoder:    json.NewEncoder(out),
		logger:     logger,
	}, nil
}

func (w *Writer) Write(result Result) error {
	if result.Error != "" {
		w.failed++
	}

	if w.format != FormatJSONL {
		return nil
	}

	if err := w.encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to write result for line %d: %w", result.LineNumber, err)
	}
	return nil
}

// Close writes the summary document in summary format. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	return WriteSummary(w.out, w.summarizer.Summarize(), w.failed)
}

// WriteSummary renders a summary with the count of rejected input records.
func WriteSummary(out io.Writer, summary models.Summary, failed int) error {
	doc := summary.Map()
	doc["failed_records"] = failed

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
