package storage

import (
	"context"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// Storage defines a unified interface for all storage operations.
// It combines player-state persistence (Redis) with game definition
// loading (filesystem catalog).
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Player state operations (Redis-backed)
	SavePlayerState(ctx context.Context, ps *state.PlayerState) error

	// LoadPlayerState retrieves a session's state.
	// Returns nil if the state doesn't exist.
	LoadPlayerState(ctx context.Context, gameID, sessionID string) (*state.PlayerState, error)

	// DeletePlayerState removes a session's state.
	DeletePlayerState(ctx context.Context, gameID, sessionID string) error

	// Game definition operations (filesystem-backed)
	ListGames(ctx context.Context) ([]game.Info, error)

	// GetGame loads a game definition by ID.
	// Returns game.ErrNotFound for unknown IDs. The definition is
	// returned as authored; validation is the caller's concern.
	GetGame(ctx context.Context, gameID string) (*game.Game, error)
}
