package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps engine errors onto HTTP statuses: malformed session
// ids are client errors, unknown games are not found, and invalid
// game definitions are server-side configuration errors. Gameplay
// non-events never reach this path; they are 200s with a failed
// outcome.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var status int
	var message string

	var vErr *game.ValidationError
	switch {
	case errors.Is(err, state.ErrInvalidSessionID):
		status = http.StatusBadRequest
		message = "Invalid session id: must be 32 alphanumeric characters"
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
		message = "Game not found"
	case errors.As(err, &vErr):
		status = http.StatusInternalServerError
		message = "Invalid game definition: " + vErr.Error()
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	} else {
		logger.Warn("Request rejected", "error", err)
	}

	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); encErr != nil {
		logger.Error("Failed to encode error response", "error", encErr)
	}
}
