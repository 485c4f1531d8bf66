package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteText writes body as text/plain with the given status code. Bundle
// files (the passcode token and the encrypted records) are ASCII text.
func WriteText(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteJSON serializes data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// statusCode before the body. If marshaling fails, nothing is written and
// the error is returned, so the caller can still answer with its own error
// response.
//
// Parameters:
//
//	w          - the HTTP response writer
//	data       - any value encoding/json can serialize
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if marshaling or writing fails
//
// Example usage:
//
//	WriteJSON(w, manifest.Published(), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
