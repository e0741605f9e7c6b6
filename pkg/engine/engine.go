// Package engine implements the session-addressed adventure game
// engine: parsing player actions, interpreting them as transitions of
// a per-session state machine, and persisting the result. Game
// definitions are loaded once, validated, and cached read-only.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// Engine is the single entry point for gameplay. It resolves game
// definitions, fetches or creates player state via storage, runs the
// interpreter, and commits the result.
type Engine struct {
	storage storage.Storage
	logger  *slog.Logger

	gamesMu sync.RWMutex
	games   map[string]*game.Game

	sessions *keyLock
}

// New creates an Engine backed by the given storage.
func New(s storage.Storage, logger *slog.Logger) *Engine {
	return &Engine{
		storage:  s,
		logger:   logger,
		games:    make(map[string]*game.Game),
		sessions: newKeyLock(),
	}
}

// ListGames returns the catalog of playable games.
func (e *Engine) ListGames(ctx context.Context) ([]game.Info, error) {
	return e.storage.ListGames(ctx)
}

// Game returns the validated definition for gameID, loading and
// caching it on first use. Definitions that fail validation are
// refused with *game.ValidationError and never served.
func (e *Engine) Game(ctx context.Context, gameID string) (*game.Game, error) {
	e.gamesMu.RLock()
	g, ok := e.games[gameID]
	e.gamesMu.RUnlock()
	if ok {
		return g, nil
	}

	g, err := e.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		e.logger.Error("Refusing to serve invalid game definition", "game_id", gameID, "error", err)
		return nil, err
	}

	e.gamesMu.Lock()
	// Another request may have loaded it concurrently; the definition
	// is immutable, so either copy is fine.
	if cached, ok := e.games[gameID]; ok {
		g = cached
	} else {
		e.games[gameID] = g
	}
	e.gamesMu.Unlock()

	return g, nil
}

// HandleAction interprets one action for one session and returns the
// outcome. The whole load → interpret → commit sequence runs inside a
// per-(gameID, sessionID) critical section, so concurrent retries for
// the same session can never lose an update; different sessions
// proceed in parallel.
//
// Errors are reserved for input and infrastructure failures
// (state.ErrInvalidSessionID, game.ErrNotFound, *game.ValidationError,
// storage errors). Gameplay non-events come back as a normal Outcome
// with Success=false.
func (e *Engine) HandleAction(ctx context.Context, gameID, sessionID, action string) (state.Outcome, error) {
	if err := state.ValidateSessionID(sessionID); err != nil {
		return state.Outcome{}, err
	}

	g, err := e.Game(ctx, gameID)
	if err != nil {
		return state.Outcome{}, err
	}

	key := gameID + ":" + sessionID
	e.sessions.Lock(key)
	defer e.sessions.Unlock(key)

	ps, err := e.storage.LoadPlayerState(ctx, gameID, sessionID)
	if err != nil {
		return state.Outcome{}, fmt.Errorf("failed to load player state: %w", err)
	}
	if ps == nil {
		ps = state.NewPlayerState(g, sessionID)
		e.logger.Debug("Created new player state", "game_id", gameID, "session_id", sessionID, "start_room", ps.CurrentRoom)
	}

	next, outcome := Interpret(g, ps, ParseAction(action))

	if err := e.storage.SavePlayerState(ctx, next); err != nil {
		return state.Outcome{}, fmt.Errorf("failed to save player state: %w", err)
	}

	e.logger.Debug("Action handled",
		"game_id", gameID,
		"session_id", sessionID,
		"action", action,
		"success", outcome.Success,
		"room", next.CurrentRoom)

	return outcome, nil
}

// StartSession creates a fresh session for gameID with a generated
// identifier and persists its initial state.
func (e *Engine) StartSession(ctx context.Context, gameID string) (*state.PlayerState, error) {
	g, err := e.Game(ctx, gameID)
	if err != nil {
		return nil, err
	}

	ps := state.NewPlayerState(g, state.NewSessionID())
	if err := e.storage.SavePlayerState(ctx, ps); err != nil {
		return nil, fmt.Errorf("failed to save new player state: %w", err)
	}

	e.logger.Info("Session started", "game_id", gameID, "session_id", ps.SessionID)
	return ps, nil
}

// Session returns the stored state for a session, or nil if none exists.
func (e *Engine) Session(ctx context.Context, gameID, sessionID string) (*state.PlayerState, error) {
	if err := state.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	return e.storage.LoadPlayerState(ctx, gameID, sessionID)
}

// EndSession removes a session's state. Ending an unknown session is
// not an error.
func (e *Engine) EndSession(ctx context.Context, gameID, sessionID string) error {
	if err := state.ValidateSessionID(sessionID); err != nil {
		return err
	}

	key := gameID + ":" + sessionID
	e.sessions.Lock(key)
	defer e.sessions.Unlock(key)

	if err := e.storage.DeletePlayerState(ctx, gameID, sessionID); err != nil {
		return fmt.Errorf("failed to delete player state: %w", err)
	}

	e.logger.Info("Session ended", "game_id", gameID, "session_id", sessionID)
	return nil
}
