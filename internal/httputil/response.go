package httputil

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bloglist/internal/model"
)

// ErrorResponse is the wire shape for every failure: a flat, stable message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; nothing left to do but log.
			log.Printf("[httputil] encode response: %v", err)
		}
	}
}

// WriteError writes an error body with an explicit status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// statusFor maps every error kind to its HTTP status. The switch is
// exhaustive over model.ErrorKind; conflicts answer 400 because clients
// treat the duplicate-username failure as a request error.
func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindAuthentication:
		return http.StatusUnauthorized
	case model.KindAuthorization:
		return http.StatusForbidden
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError maps a domain error to its transport status and writes
// it. Errors outside the taxonomy become a logged 500 with a generic body so
// internals never leak to the client.
func WriteDomainError(w http.ResponseWriter, err error) {
	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		WriteError(w, statusFor(domainErr.Kind), domainErr.Message)
		return
	}

	log.Printf("[httputil] unhandled error: %v", err)
	WriteError(w, http.StatusInternalServerError, "internal server error")
}
