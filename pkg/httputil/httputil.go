// Package httputil holds the shared HTTP response and decoding helpers.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"storesense/pkg/sentinel"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine code and human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError maps sentinel errors onto HTTP statuses. Unrecognized errors
// become opaque 500s so internals never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	message := "internal error"

	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		status, code, message = http.StatusNotFound, "not_found", "resource not found"
	case errors.Is(err, sentinel.ErrConflict):
		status, code, message = http.StatusConflict, "conflict", "resource conflict"
	case errors.Is(err, sentinel.ErrExpired):
		status, code, message = http.StatusGone, "expired", "resource expired"
	case errors.Is(err, sentinel.ErrInvalidState):
		status, code, message = http.StatusUnprocessableEntity, "invalid_state", err.Error()
	case errors.Is(err, sentinel.ErrUnavailable):
		status, code, message = http.StatusServiceUnavailable, "unavailable", "service unavailable"
	}

	WriteJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// WriteBadRequest reports a client error with a specific message.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorBody{Code: "bad_request", Message: message},
	})
}

// Validator lets request DTOs declare their own validation.
type Validator interface {
	Validate() error
}

// Decode parses the JSON body into T and runs its validation. On failure it
// writes the error response and returns false.
func Decode[T Validator](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.DebugContext(r.Context(), "malformed request body", "error", err)
		WriteBadRequest(w, "malformed JSON body")
		return req, false
	}
	if err := req.Validate(); err != nil {
		WriteBadRequest(w, err.Error())
		return req, false
	}
	return req, true
}
