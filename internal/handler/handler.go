package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// ErrorResponse represents a 400 error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; all we can do is record it
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// writeMessage writes a bare JSON string body, e.g. "product not found".
func writeMessage(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	writeJSON(w, status, message, logger)
}

// writeBadRequest writes a 400 with an error code and message.
func writeBadRequest(w http.ResponseWriter, code, message string, fields map[string]string, logger zerolog.Logger) {
	logger.Warn().Str("code", code).Str("error", message).Msg("rejected request")
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: code, Message: message, Fields: fields}, logger)
}

// writeInternalError writes an empty-bodied 500 after logging the cause.
func writeInternalError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg("handler error")
	w.WriteHeader(http.StatusInternalServerError)
}
