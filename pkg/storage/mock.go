package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// MockStorage is an in-memory implementation of Storage for testing.
type MockStorage struct {
	mu        sync.RWMutex
	states    map[string]*state.PlayerState
	games     map[string]*game.Game
	pingError error
	saveError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		states: make(map[string]*state.PlayerState),
		games:  make(map[string]*game.Game),
	}
}

// AddGame registers a game definition with the mock catalog.
func (m *MockStorage) AddGame(g *game.Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
}

// SetPingError configures the mock to fail on ping with the given error.
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error.
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// Ping mocks the storage health check.
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close.
func (m *MockStorage) Close() error {
	return nil
}

func stateKey(gameID, sessionID string) string {
	return gameID + ":" + sessionID
}

// SavePlayerState mocks saving a player state.
func (m *MockStorage) SavePlayerState(ctx context.Context, ps *state.PlayerState) error {
	if ps == nil {
		return errors.New("player state cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	ps.UpdatedAt = time.Now()
	m.states[stateKey(ps.GameID, ps.SessionID)] = ps
	return nil
}

// LoadPlayerState mocks loading a player state.
// Returns nil if the state doesn't exist.
func (m *MockStorage) LoadPlayerState(ctx context.Context, gameID, sessionID string) (*state.PlayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ps, ok := m.states[stateKey(gameID, sessionID)]
	if !ok {
		return nil, nil
	}
	return ps.Clone(), nil
}

// DeletePlayerState mocks removing a player state.
func (m *MockStorage) DeletePlayerState(ctx context.Context, gameID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, stateKey(gameID, sessionID))
	return nil
}

// ListGames returns the registered games sorted by ID.
func (m *MockStorage) ListGames(ctx context.Context) ([]game.Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]game.Info, 0, len(m.games))
	for _, g := range m.games {
		infos = append(infos, game.Info{ID: g.ID, Title: g.Title})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// GetGame returns a registered game definition.
func (m *MockStorage) GetGame(ctx context.Context, gameID string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[gameID]
	if !ok {
		return nil, game.ErrNotFound
	}
	return g, nil
}
