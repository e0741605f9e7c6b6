package game

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"lantern", "Lantern"},
		{"rusty_lantern", "Rusty Lantern"},
		{"town_hall", "Town Hall"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.id); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, expected %q", tt.id, got, tt.expected)
		}
	}
}

func TestItemName_PrefersAuthoredName(t *testing.T) {
	g := validGame()

	if got := g.ItemName("lantern"); got != "Lantern" {
		t.Errorf("Expected authored name Lantern, got %q", got)
	}

	// Unknown items fall back to derivation
	if got := g.ItemName("silver_coin"); got != "Silver Coin" {
		t.Errorf("Expected derived name Silver Coin, got %q", got)
	}
}

func TestRoomName(t *testing.T) {
	g := validGame()

	if got := g.RoomName("entrance"); got != "Entrance" {
		t.Errorf("Expected derived name Entrance, got %q", got)
	}
}
