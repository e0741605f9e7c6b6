package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/adventure-engine/pkg/game"
)

func testGame() *game.Game {
	return &game.Game{
		ID:        "haunted_mansion",
		Title:     "The Haunted Mansion",
		StartRoom: "entrance",
		Rooms: map[string]game.Room{
			"entrance": {Exits: map[string]string{"north": "cellar"}},
			"cellar": {
				Exits: map[string]string{"south": "entrance"},
				Items: []string{"lantern", "rope"},
			},
		},
	}
}

func TestNewPlayerState(t *testing.T) {
	g := testGame()
	ps := NewPlayerState(g, "abcdef0123456789abcdef0123456789")

	assert.Equal(t, "abcdef0123456789abcdef0123456789", ps.SessionID)
	assert.Equal(t, "haunted_mansion", ps.GameID)
	assert.Equal(t, "entrance", ps.CurrentRoom, "new sessions start in the start room")
	assert.Empty(t, ps.Inventory)
	assert.Empty(t, ps.History)
	assert.False(t, ps.CreatedAt.IsZero())
}

func TestItemsInRoom_DefaultsToDefinition(t *testing.T) {
	g := testGame()
	ps := NewPlayerState(g, "abcdef0123456789abcdef0123456789")

	items := ps.ItemsInRoom(g, "cellar")
	assert.Equal(t, []string{"lantern", "rope"}, items)
}

func TestRemoveRoomItem(t *testing.T) {
	g := testGame()
	ps := NewPlayerState(g, "abcdef0123456789abcdef0123456789")

	ok := ps.RemoveRoomItem(g, "cellar", "lantern")
	assert.True(t, ok)
	assert.Equal(t, []string{"rope"}, ps.ItemsInRoom(g, "cellar"), "taken item should leave the session's view of the room")

	// Taking the same item again fails
	ok = ps.RemoveRoomItem(g, "cellar", "lantern")
	assert.False(t, ok)

	// The definition itself is untouched
	assert.Equal(t, []string{"lantern", "rope"}, g.RoomItems("cellar"))
}

func TestRemoveRoomItem_NotPresent(t *testing.T) {
	g := testGame()
	ps := NewPlayerState(g, "abcdef0123456789abcdef0123456789")

	ok := ps.RemoveRoomItem(g, "entrance", "lantern")
	assert.False(t, ok, "lantern is in the cellar, not the entrance")
}

func TestClone_IsIndependent(t *testing.T) {
	g := testGame()
	ps := NewPlayerState(g, "abcdef0123456789abcdef0123456789")
	ps.Inventory = append(ps.Inventory, "rope")
	ps.History = append(ps.History, "entrance")
	ps.RemoveRoomItem(g, "cellar", "lantern")

	clone := ps.Clone()
	clone.Inventory = append(clone.Inventory, "lantern")
	clone.History = append(clone.History, "cellar")
	clone.RoomItems["cellar"] = []string{}

	assert.Equal(t, []string{"rope"}, ps.Inventory, "mutating the clone must not touch the original")
	assert.Equal(t, []string{"entrance"}, ps.History)
	assert.Equal(t, []string{"rope"}, ps.RoomItems["cellar"])
}

func TestCarrying(t *testing.T) {
	g := testGame()
	ps := NewPlayerState(g, "abcdef0123456789abcdef0123456789")

	assert.False(t, ps.Carrying("lantern"))
	ps.Inventory = append(ps.Inventory, "lantern")
	assert.True(t, ps.Carrying("lantern"))
}
