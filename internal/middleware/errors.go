package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/popeskul/moments-broadcast/internal/api"
)

// Error codes returned in api.ErrorResponse.
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
	ErrorCodeValidation        = "VALIDATION_ERROR"
	ErrorCodeConfiguration     = "CONFIGURATION_ERROR"
	ErrorCodeNotFound          = "NOT_FOUND"
	ErrorCodeConflict          = "CONFLICT"
	ErrorCodeUnavailable       = "SERVICE_UNAVAILABLE"
)

const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
)

// WriteError renders an api.ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string, details ...string) {
	now := time.Now()
	resp := api.ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: &now,
	}
	if len(details) > 0 {
		resp.Details = &details
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}
