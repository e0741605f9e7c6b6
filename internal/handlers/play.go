package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

// PlayHandler dispatches player actions to the engine.
//
// POST /v1/play - interpret one action for one session
type PlayHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewPlayHandler(engine *engine.Engine, logger *slog.Logger) *PlayHandler {
	return &PlayHandler{
		engine: engine,
		logger: logger,
	}
}

// PlayRequest defines the request body for one action
type PlayRequest struct {
	GameID    string `json:"game_id"`    // Required: id of the game
	SessionID string `json:"session_id"` // Required: 32-character alphanumeric token
	Action    string `json:"action"`     // Required: player command, e.g. "north" or "take lantern"
}

func (h *PlayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for play endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Supported methods: POST",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if req.GameID == "" || req.SessionID == "" {
		h.logger.Warn("Missing required fields", "game_id", req.GameID != "", "session_id", req.SessionID != "")
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "game_id and session_id fields are required",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	// Gameplay failures (invalid move, missing item) come back as a
	// normal outcome with success=false, not as an HTTP error.
	outcome, err := h.engine.HandleAction(r.Context(), req.GameID, req.SessionID, req.Action)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		h.logger.Error("Failed to encode outcome response", "error", err)
	}
}
