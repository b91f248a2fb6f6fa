package middleware

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyBody      = errors.New("request body is empty")
	ErrInvalidRequest = errors.New("invalid validation request")
)

type ErrorResponse struct {
	Code    int    `json:"code" description:"HTTP status code"`
	Message string `json:"message" description:"Error message"`
}

func HandleError(resp *restful.Response, err error, status int) {
	if err := resp.WriteHeaderAndEntity(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	}); err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}

// StatusFor maps known request errors to 400 and everything else to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptyBody), errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
