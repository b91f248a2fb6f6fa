package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/rs/zerolog"
)

// ValidationService is the part of the validator the API depends on.
type ValidationService interface {
	Validate(input models.ValidationInput) models.ValidationVerdict
	Summarize() models.Summary
	Level() models.ValidationLevel
}

type HealthResponse struct {
	Status          string `json:"status" description:"Service status"`
	Version         string `json:"version" description:"API version"`
	ValidationLevel string `json:"validation_level" description:"Configured validation level"`
}

type Handler struct {
	validator ValidationService
	logger    *zerolog.Logger
}

func NewHandler(validator ValidationService, logger *zerolog.Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// POST /api/v1/validate
// Body: ValidationRequest
// Returns: ValidationVerdict
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var validationRequest models.ValidationRequest
	if err := req.ReadEntity(&validationRequest); err != nil {
		if errors.Is(err, io.EOF) {
			err = middleware.ErrEmptyBody
		}
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := validationRequest.Validate(); err != nil {
		h.logger.Warn().Err(err).Str("event_id", validationRequest.EventID).Msg("Rejected validation request")
		middleware.HandleError(resp, fmt.Errorf("%w: %v", middleware.ErrInvalidRequest, err), http.StatusBadRequest)
		return
	}

	h.logger.Debug().
		Str("event_id", validationRequest.EventID).
		Str("event_type", string(validationRequest.EventType)).
		Str("agent_name", validationRequest.Agent.Name).
		Msg("Start validation")

	verdict := h.validator.Validate(validationRequest.ToInput())

	resp.WriteHeaderAndEntity(http.StatusOK, verdict)
}

// GET /api/v1/summary
func (h *Handler) Summary(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.validator.Summarize().Map())
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:          "ok",
		Version:         "1.0.0",
		ValidationLevel: string(h.validator.Level()),
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
