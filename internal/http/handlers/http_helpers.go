package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rogerio-castellano/ink-to-doc/internal/auth"
)

// TokenHeader is the custom header the frontend sends the raw token in.
const TokenHeader = "x-auth-token"

// userIDFromRequest extracts the caller's user id from the token header.
// Routes using this sit behind AuthMiddleware, which already rejected
// missing or invalid tokens.
func userIDFromRequest(r *http.Request) (string, error) {
	return auth.VerifyToken(r.Header.Get(TokenHeader))
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// writeError sends the structured {"message": ...} error body.
func writeError(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, MessageResult{Message: message})
}
