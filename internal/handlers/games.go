package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

// GamesHandler serves the game catalog.
//
// GET /v1/games - list playable games
type GamesHandler struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewGamesHandler(engine *engine.Engine, logger *slog.Logger) *GamesHandler {
	return &GamesHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *GamesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for games endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Supported methods: GET",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	games, err := h.engine.ListGames(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(games); err != nil {
		h.logger.Error("Failed to encode games response", "error", err)
	}
}
