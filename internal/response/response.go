// Package response writes JSON HTTP responses. Success bodies are written
// as-is (the API contract fixes their shapes); errors use a small uniform
// envelope.
package response

import (
	"encoding/json"
	"net/http"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// ValidationError writes a 400 with field-level detail.
func ValidationError(w http.ResponseWriter, fields []FieldError) {
	JSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: fields})
}
