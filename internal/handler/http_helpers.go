package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lector-pages/internal/domain"
	apperrors "lector-pages/pkg/errors"
)

// maxJSONBodySize caps JSON request bodies.
const maxJSONBodySize = 1 << 20

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestIDFromContext returns the id assigned by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

type errorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, errType apperrors.ErrorType, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message, Type: string(errType)})
}

// writeAppError maps err to its status and writes the client-safe message.
// The underlying cause is logged, never sent.
func writeAppError(w http.ResponseWriter, r *http.Request, logger domain.Logger, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			appErr = &apperrors.AppError{
				Type:       apperrors.ErrorTypeInternal,
				Message:    "Request timed out",
				StatusCode: http.StatusGatewayTimeout,
				Cause:      err,
			}
		case errors.Is(err, context.Canceled):
			logger.Debug("Request cancelled", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
			appErr = apperrors.NewInternalError("Request cancelled", err)
		default:
			appErr = apperrors.NewInternalError("Internal server error", err)
		}
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", err,
			"path", r.URL.Path,
			"type", appErr.Type,
			"status", appErr.StatusCode,
			"request_id", RequestIDFromContext(r.Context()),
		)
	} else {
		logger.Warn("Request rejected",
			"path", r.URL.Path,
			"type", appErr.Type,
			"status", appErr.StatusCode,
			"details", appErr.Details,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
	writeError(w, appErr.StatusCode, appErr.Type, appErr.Message)
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperrors.NewTooLargeError("Request body is too large", err)
		}
		return apperrors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}
