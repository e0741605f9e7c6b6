package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

// SessionsHandler manages session lifecycle.
//
// Routes:
// POST /v1/sessions                  - Start a new session for a game
// GET /v1/sessions/{game}/{session}  - Read a session's state
// DELETE /v1/sessions/{game}/{session} - End a session
type SessionsHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewSessionsHandler(engine *engine.Engine, logger *slog.Logger) *SessionsHandler {
	return &SessionsHandler{
		engine: engine,
		logger: logger,
	}
}

// StartSessionRequest defines the request body for starting a session
type StartSessionRequest struct {
	GameID string `json:"game_id"` // Required: id of the game to play
}

func (h *SessionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Parse the path to extract game and session IDs for GET/DELETE
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions"), "/")
	var gameID, sessionID string
	if path != "" {
		parts := strings.SplitN(path, "/", 2)
		gameID = parts[0]
		if len(parts) == 2 {
			sessionID = parts[1]
		}
	}

	switch r.Method {
	case http.MethodPost:
		h.handleStart(w, r)

	case http.MethodGet:
		if gameID == "" || sessionID == "" {
			h.logger.Warn("GET request without game and session IDs")
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Game ID and session ID are required for GET requests",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleRead(w, r, gameID, sessionID)

	case http.MethodDelete:
		if gameID == "" || sessionID == "" {
			h.logger.Warn("DELETE request without game and session IDs")
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Game ID and session ID are required for DELETE requests",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleDelete(w, r, gameID, sessionID)

	default:
		h.logger.Warn("Method not allowed for sessions endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Supported methods: POST, GET, DELETE",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
	}
}

func (h *SessionsHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
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

	if req.GameID == "" {
		h.logger.Warn("Missing required field: game_id")
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "game_id field is required",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	ps, err := h.engine.StartSession(r.Context(), req.GameID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ps); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionsHandler) handleRead(w http.ResponseWriter, r *http.Request, gameID, sessionID string) {
	ps, err := h.engine.Session(r.Context(), gameID, sessionID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if ps == nil {
		h.logger.Warn("Session not found", "game_id", gameID, "session_id", sessionID)
		w.WriteHeader(http.StatusNotFound)
		response := ErrorResponse{
			Error: "Session not found",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ps); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionsHandler) handleDelete(w http.ResponseWriter, r *http.Request, gameID, sessionID string) {
	if err := h.engine.EndSession(r.Context(), gameID, sessionID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.logger.Debug("Session deleted successfully", "game_id", gameID, "session_id", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
