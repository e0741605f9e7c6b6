package game

import (
	"errors"
	"strings"
	"testing"
)

func validGame() *Game {
	return &Game{
		ID:        "haunted_mansion",
		Title:     "The Haunted Mansion",
		StartRoom: "entrance",
		FinalRoom: "cellar",
		Rooms: map[string]Room{
			"entrance": {
				Description: "The entrance hall.",
				Exits:       map[string]string{"north": "cellar"},
			},
			"cellar": {
				Description: "A dark cellar.",
				Exits:       map[string]string{"south": "entrance"},
				Items:       []string{"lantern"},
			},
		},
		Items: map[string]Item{
			"lantern": {Name: "Lantern", Description: "A battered oil lantern."},
		},
	}
}

func TestValidate_ValidGame(t *testing.T) {
	if err := validGame().Validate(); err != nil {
		t.Errorf("Expected valid game, got %v", err)
	}
}

func TestValidate_BrokenReferences(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Game)
		expected string
	}{
		{
			name:     "missing start room",
			mutate:   func(g *Game) { g.StartRoom = "" },
			expected: "missing start_room",
		},
		{
			name:     "undefined start room",
			mutate:   func(g *Game) { g.StartRoom = "attic" },
			expected: `start_room "attic" is not a defined room`,
		},
		{
			name:     "undefined final room",
			mutate:   func(g *Game) { g.FinalRoom = "attic" },
			expected: `final_room "attic" is not a defined room`,
		},
		{
			name: "exit to undefined room",
			mutate: func(g *Game) {
				room := g.Rooms["entrance"]
				room.Exits = map[string]string{"north": "attic"}
				g.Rooms["entrance"] = room
			},
			expected: `exit "north" leads to undefined room "attic"`,
		},
		{
			name: "undefined item placed in room",
			mutate: func(g *Game) {
				room := g.Rooms["cellar"]
				room.Items = []string{"ghost_trap"}
				g.Rooms["cellar"] = room
			},
			expected: `places undefined item "ghost_trap"`,
		},
		{
			name: "duplicate item in room",
			mutate: func(g *Game) {
				room := g.Rooms["cellar"]
				room.Items = []string{"lantern", "lantern"}
				g.Rooms["cellar"] = room
			},
			expected: `lists item "lantern" more than once`,
		},
		{
			name:     "no rooms",
			mutate:   func(g *Game) { g.Rooms = nil },
			expected: "no rooms defined",
		},
		{
			name:     "missing title",
			mutate:   func(g *Game) { g.Title = "" },
			expected: "missing title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGame()
			tt.mutate(g)

			err := g.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("Expected error to mention %q, got: %v", tt.expected, err)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	g := validGame()
	g.StartRoom = "attic"
	room := g.Rooms["entrance"]
	room.Exits = map[string]string{"north": "tower"}
	g.Rooms["entrance"] = room

	err := g.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(vErr.Problems) != 2 {
		t.Errorf("Expected 2 problems, got %d: %v", len(vErr.Problems), vErr.Problems)
	}
}
