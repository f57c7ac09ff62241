// Package envelope - Response envelopes for the HTTP API
// Every error leaves the API as {"error":{"code","message"},"requestId"}.
package envelope

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"capcost/internal/errors"
)

// Error codes
const (
	CodeInvalidJSON  = "INVALID_JSON"
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorDetail is the body of an error response
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorBody wraps an error for the client
type ErrorBody struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"requestId,omitempty"`
}

// StatusFor maps a domain error to an HTTP status and code
func StatusFor(err error) (int, string) {
	switch errors.TypeOf(err) {
	case errors.TypeInput:
		return http.StatusBadRequest, CodeInvalidInput
	case errors.TypeNotFound:
		return http.StatusNotFound, CodeNotFound
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// Message returns the client facing message of err. Internal failures
// are not described to the client.
func Message(err error) string {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return "internal error"
	}
	switch e.Type {
	case errors.TypeInput, errors.TypeNotFound:
		return e.Message
	default:
		return "internal error"
	}
}

// WriteJSON writes v with status
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an error envelope
func WriteError(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, ErrorBody{
		Error:     ErrorDetail{Code: code, Message: message},
		RequestID: requestID,
	})
}

// WriteErr maps err and writes its envelope
func WriteErr(w http.ResponseWriter, err error, requestID string) {
	status, code := StatusFor(err)
	WriteError(w, status, code, Message(err), requestID)
}
