package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/rs/zerolog"
)

const maxLineSize = 1024 * 1024

// InputRecord is one parsed JSONL line. Error is set when the line is not a valid request.
type InputRecord struct {
	LineNumber int
	Request    models.ValidationRequest
	Error      error
}

type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records until EOF or ctx is cancelled. Blank lines are skipped
// but still counted so line numbers match the file.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := parseLine(lineNumber, line)
			if record.Error != nil {
				r.logger.Warn().Err(record.Error).Int("line", lineNumber).Msg("Invalid input record")
			}

			select {
			case out <- record:
			case <-ctx.Done():
				r.logger.Warn().Int("line", lineNumber).Msg("Reading cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber).Msg("Failed to read input")
			select {
			case out <- InputRecord{LineNumber: lineNumber + 1, Error: fmt.Errorf("failed to read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func parseLine(lineNumber int, line string) InputRecord {
	record := InputRecord{LineNumber: lineNumber}

	if err := json.Unmarshal([]byte(line), &record.Request); err != nil {
		record.Error = fmt.Errorf("line %d: invalid JSON: %w", lineNumber, err)
		return record
	}
	if err := record.Request.Validate(); err != nil {
		record.Error = fmt.Errorf("line %d: invalid request: %w", lineNumber, err)
	}

	return record
}
