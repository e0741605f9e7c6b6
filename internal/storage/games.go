package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/game"
)

// Game definition operations (filesystem-backed)

func (r *RedisStorage) gamesDir() string {
	return filepath.Join(r.dataDir, "games")
}

func (r *RedisStorage) ListGames(ctx context.Context) ([]game.Info, error) {
	games := make([]game.Info, 0)

	err := filepath.WalkDir(r.gamesDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		file, err := os.ReadFile(path)
		if err != nil {
			r.logger.Warn("Failed to read game file", "path", path, "error", err)
			return nil
		}

		var g game.Game
		if err := json.Unmarshal(file, &g); err != nil {
			r.logger.Warn("Failed to unmarshal game file", "path", path, "error", err)
			return nil
		}

		if g.ID == "" {
			g.ID = strings.TrimSuffix(filepath.Base(path), ".json")
		}
		games = append(games, game.Info{ID: g.ID, Title: g.Title})
		return nil
	})

	if err != nil {
		r.logger.Error("Failed to walk games directory", "error", err)
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (r *RedisStorage) GetGame(ctx context.Context, gameID string) (*game.Game, error) {
	path := filepath.Join(r.gamesDir(), gameID+".json")

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", game.ErrNotFound, gameID)
		}
		return nil, fmt.Errorf("failed to read game file: %w", err)
	}

	var g game.Game
	if err := json.Unmarshal(file, &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
	}

	// Filename is authoritative for the ID
	g.ID = gameID

	return &g, nil
}
