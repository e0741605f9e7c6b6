package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// Player state operations (Redis-backed)

func stateKey(gameID, sessionID string) string {
	return "playerstate:" + gameID + ":" + sessionID
}

func (r *RedisStorage) SavePlayerState(ctx context.Context, ps *state.PlayerState) error {
	// Update the UpdatedAt timestamp
	ps.UpdatedAt = time.Now()

	data, err := json.Marshal(ps)
	if err != nil {
		r.logger.Error("Failed to marshal player state", "game_id", ps.GameID, "session_id", ps.SessionID, "error", err)
		return fmt.Errorf("failed to marshal player state: %w", err)
	}

	// TTL is the session expiry policy; every save refreshes it.
	key := stateKey(ps.GameID, ps.SessionID)
	cmd := r.client.Set(ctx, key, string(data), r.sessionTTL)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save player state", "game_id", ps.GameID, "session_id", ps.SessionID, "error", err)
		return fmt.Errorf("failed to save player state: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadPlayerState(ctx context.Context, gameID, sessionID string) (*state.PlayerState, error) {
	key := stateKey(gameID, sessionID)
	cmd := r.client.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Debug("Player state not found", "game_id", gameID, "session_id", sessionID)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load player state", "game_id", gameID, "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}

	data := cmd.Val()
	if data == "" {
		r.logger.Debug("Player state not found", "game_id", gameID, "session_id", sessionID)
		return nil, nil
	}

	var ps state.PlayerState
	if err := json.Unmarshal([]byte(data), &ps); err != nil {
		r.logger.Error("Failed to unmarshal player state", "game_id", gameID, "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("failed to unmarshal player state: %w", err)
	}

	return &ps, nil
}

func (r *RedisStorage) DeletePlayerState(ctx context.Context, gameID, sessionID string) error {
	key := stateKey(gameID, sessionID)
	cmd := r.client.Del(ctx, key)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete player state", "game_id", gameID, "session_id", sessionID, "error", err)
		return fmt.Errorf("failed to delete player state: %w", err)
	}
	return nil
}
