package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/raiyan/alumni-network/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
// One shape for every failure, so the front end always knows what to parse:
//
//	{"error": "not_found", "message": "event not found with id 9"}
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine-readable error type (e.g., "not_found")
	Message string `json:"message"` // Human-readable description
}

// writeJSON sends a JSON response with the given status code.
// Headers and status must go out before the body — once Encode writes, the
// headers are already on the wire.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are gone; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status and sends it.
//
// This is the one place domain errors meet HTTP. The session store and the
// listing packages return apperror values; errors.Is walks the chain (our
// AppError implements Unwrap) to find the sentinel and pick the status:
//
//	ErrValidation    → 400  validation_error
//	ErrLoginRejected → 401  invalid_credentials
//	ErrForbidden     → 403  forbidden
//	ErrNotFound      → 404  not_found
//	ErrSuperseded    → 409  superseded
//
// Anything else is a 500 with a generic message — internal details (file
// paths, SQL) must not leak to the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrLoginRejected):
			status = http.StatusUnauthorized
			errorType = "invalid_credentials"
		case errors.Is(err, apperror.ErrForbidden):
			status = http.StatusForbidden
			errorType = "forbidden"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrSuperseded):
			status = http.StatusConflict
			errorType = "superseded"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
