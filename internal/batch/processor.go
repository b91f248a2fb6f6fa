package batch

import (
	"context"
	"sync"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/rs/zerolog"
)

type Validator interface {
	Validate(input models.ValidationInput) models.ValidationVerdict
}

// Result is one output record. Verdict is nil when the input line was rejected.
type Result struct {
	LineNumber int                       `json:"line"`
	ID         string                    `json:"id"`
	Verdict    *models.ValidationVerdict `json:"verdict,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

// Processor fans records out to a fixed pool of workers sharing one validator.
type Processor struct {
	validator Validator
	workers   int
	logger    *zerolog.Logger
}

func NewProcessor(validator Validator, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}

	return &Processor{
		validator: validator,
		workers:   workers,
		logger:    logger,
	}
}

// Process validates records concurrently. Results are not ordered.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan Result {
	jobs := make(chan InputRecord)
	results := make(chan Result, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for record := range jobs {
				result := p.process(record)
				p.logger.Debug().Int("worker", workerID).Int("line", record.LineNumber).Msg("Record processed")

				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}(i)
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				p.logger.Warn().Msg("Processing cancelled")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Processor) process(record InputRecord) Result {
	result := Result{
		LineNumber: record.LineNumber,
		ID:         record.Request.EventID,
	}

	if record.Error != nil {
		result.Error = record.Error.Error()
		return result
	}

	verdict := p.validator.Validate(record.Request.ToInput())
	result.ID = verdict.Metadata.RequestID
	result.Verdict = &verdict

	return result
}
