package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/game"
)

func setupTestCatalog(t *testing.T, files map[string]string) *RedisStorage {
	t.Helper()

	dataDir := t.TempDir()
	gamesDir := filepath.Join(dataDir, "games")
	if err := os.MkdirAll(gamesDir, 0o755); err != nil {
		t.Fatalf("Failed to create games dir: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(gamesDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write game file %s: %v", name, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	// The Redis side is unused by catalog operations
	return NewRedisStorage("localhost:0", dataDir, time.Hour, logger)
}

const mansionJSON = `{
	"id": "haunted_mansion",
	"title": "The Haunted Mansion",
	"start_room": "entrance",
	"rooms": {
		"entrance": {"description": "The entrance hall.", "exits": {"north": "cellar"}},
		"cellar": {"description": "A dark cellar.", "exits": {"south": "entrance"}, "items": ["lantern"]}
	},
	"items": {"lantern": {"name": "Lantern", "description": "A battered oil lantern."}}
}`

func TestListGames(t *testing.T) {
	rs := setupTestCatalog(t, map[string]string{
		"haunted_mansion.json": mansionJSON,
		"village.json":         `{"title": "The Village", "start_room": "marketplace", "rooms": {"marketplace": {}}}`,
		"notes.txt":            "not a game",
		"broken.json":          "{not json",
	})

	games, err := rs.ListGames(context.Background())
	if err != nil {
		t.Fatalf("Failed to list games: %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("Expected 2 games, got %d: %+v", len(games), games)
	}
	// Sorted by ID; village.json has no id field, so the filename is used
	if games[0].ID != "haunted_mansion" || games[0].Title != "The Haunted Mansion" {
		t.Errorf("Unexpected first game: %+v", games[0])
	}
	if games[1].ID != "village" || games[1].Title != "The Village" {
		t.Errorf("Unexpected second game: %+v", games[1])
	}
}

func TestListGames_EmptyCatalog(t *testing.T) {
	rs := setupTestCatalog(t, nil)

	games, err := rs.ListGames(context.Background())
	if err != nil {
		t.Fatalf("Failed to list games: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected empty catalog, got %+v", games)
	}
}

func TestGetGame(t *testing.T) {
	rs := setupTestCatalog(t, map[string]string{
		"haunted_mansion.json": mansionJSON,
	})

	g, err := rs.GetGame(context.Background(), "haunted_mansion")
	if err != nil {
		t.Fatalf("Failed to get game: %v", err)
	}

	if g.ID != "haunted_mansion" {
		t.Errorf("Expected ID haunted_mansion, got %s", g.ID)
	}
	if g.StartRoom != "entrance" {
		t.Errorf("Expected start room entrance, got %s", g.StartRoom)
	}
	if len(g.Rooms) != 2 {
		t.Errorf("Expected 2 rooms, got %d", len(g.Rooms))
	}
	if room, ok := g.Rooms["cellar"]; !ok || len(room.Items) != 1 || room.Items[0] != "lantern" {
		t.Errorf("Unexpected cellar room: %+v", g.Rooms["cellar"])
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Expected fixture game to validate: %v", err)
	}
}

func TestGetGame_FilenameIsAuthoritative(t *testing.T) {
	// The id field inside the file disagrees with the filename
	rs := setupTestCatalog(t, map[string]string{
		"mansion.json": mansionJSON,
	})

	g, err := rs.GetGame(context.Background(), "mansion")
	if err != nil {
		t.Fatalf("Failed to get game: %v", err)
	}
	if g.ID != "mansion" {
		t.Errorf("Expected filename-derived ID mansion, got %s", g.ID)
	}
}

func TestGetGame_NotFound(t *testing.T) {
	rs := setupTestCatalog(t, nil)

	_, err := rs.GetGame(context.Background(), "missing_game")
	if !errors.Is(err, game.ErrNotFound) {
		t.Errorf("Expected game.ErrNotFound, got %v", err)
	}
}
