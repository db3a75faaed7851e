package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"shopcatalog/internal/domain"
)

// writeJSON encodes v as the response body with the given status code.
// Encoding failures are logged; by then the status line is already sent,
// so there is nothing better to do.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// messageBody is the standard single-message response shape, used for both
// success confirmations ("Product deleted") and error bodies.
type messageBody struct {
	Message string `json:"message"`
}

// writeMessage writes a {"message": ...} body with the given status.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageBody{Message: message})
}

// respondError maps a service error to its HTTP response. entity names the
// resource for the client-facing message ("Shop", "Product", "Tag", "User").
// Anything outside the domain taxonomy is a 500 with a generic body; the
// detail goes to the log, never to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, entity string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, domain.ErrConflict):
		writeMessage(w, http.StatusConflict, entity+" already exists")
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrUnauthenticated):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		slog.ErrorContext(r.Context(), "handler error", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.ShopService.Create: validation error: title is required" → "title is required".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return "invalid request"
}

// decodeJSON parses the request body into dst. A missing or malformed body
// is reported to the client as a 400; the caller should return immediately
// when ok is false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) (ok bool) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
