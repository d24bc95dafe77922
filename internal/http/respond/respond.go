package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/session"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes a success or informational response using the common envelope.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Code: status, Message: message, Data: data})
}

// Error writes an error response with the shared envelope structure.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Code: status, Message: message})
}

// Err maps a business error to its status code. Unknown errors are logged and
// reported as 500 without leaking their text.
func Err(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("unhandled error", "err", err)
		Error(w, status, "internal error")
		return
	}
	Error(w, status, err.Error())
}

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNotEmployer), errors.Is(err, app.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, app.ErrProfileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("respond: encode payload failed", "err", err)
	}
}
