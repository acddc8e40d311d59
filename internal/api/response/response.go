// Package response provides utilities for sending consistent HTTP responses.
// It includes helpers for JSON responses and standardized error responses.
package response

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// includeStack controls whether error responses carry the underlying error
// detail. It is enabled once at startup in development and never toggled
// after that.
var includeStack bool

// SetDevelopment enables error detail in responses. Call once at startup.
func SetDevelopment(dev bool) {
	includeStack = dev
}

// ErrorResponse represents a structured error response returned by the API.
// Stack carries the underlying error detail and is suppressed outside
// development.
type ErrorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// NotFoundBody is returned for requests that match no route.
type NotFoundBody struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Error   NotFoundError `json:"error"`
}

type NotFoundError struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Method      string `json:"method"`
	Timestamp   string `json:"timestamp"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a structured error response with the given status code.
// The message should be a user-friendly error description; detail is the
// underlying error text and is included only in development.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
//	response.RespondError(w, http.StatusNotFound, "fund not found", "")
func RespondError(w http.ResponseWriter, status int, message string, detail string) {
	resp := ErrorResponse{Message: message}
	if includeStack {
		resp.Stack = detail
	}
	RespondJSON(w, status, resp)
}

// RespondNotFoundRoute sends the structured body for unmatched routes.
func RespondNotFoundRoute(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusNotFound, NotFoundBody{
		Success: false,
		Message: "Not Found",
		Error: NotFoundError{
			Code:        http.StatusNotFound,
			Description: "The requested resource was not found on this server",
			Path:        r.URL.Path,
			Method:      r.Method,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		},
	})
}
