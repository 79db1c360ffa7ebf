package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/joestump/contact-app/internal/contacts"
	"github.com/joestump/contact-app/internal/logger"
	"github.com/joestump/contact-app/internal/metrics"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Code     string   `json:"code"`
	Messages []string `json:"messages,omitempty"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string, messages ...string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code, Messages: messages})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps a contacts.Service error to its HTTP status and logs
// it: client errors at WARN, everything else at ERROR.
func writeServiceError(w http.ResponseWriter, r *http.Request, fallback *slog.Logger, err error) {
	var (
		status   int
		code     string
		kind     string
		message  = err.Error()
		messages []string
		bad      *contacts.BadResourceError
	)
	switch {
	case errors.As(err, &bad):
		status, code, kind = http.StatusBadRequest, "BAD_RESOURCE", "bad_resource"
		message, messages = bad.Message, bad.Messages
	case errors.Is(err, contacts.ErrNotFound):
		status, code, kind = http.StatusNotFound, "NOT_FOUND", "not_found"
	case errors.Is(err, contacts.ErrAlreadyExists):
		status, code, kind = http.StatusConflict, "ALREADY_EXISTS", "already_exists"
	default:
		status, code, kind = http.StatusInternalServerError, "INTERNAL_ERROR", "internal"
		message = "internal error"
	}
	metrics.OperationErrorsTotal.WithLabelValues(kind).Inc()

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContext(r.Context(), fallback).LogAttrs(r.Context(), level, "contact operation failed",
		slog.Any("err", err),
		slog.Int("status", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	writeError(w, status, message, code, messages...)
}
