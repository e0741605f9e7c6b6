package state

import (
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/game"
)

// PlayerState is one session's mutable progress through a game.
// It is owned exclusively by that session; two sessions playing the
// same title never share state, so one player taking an item does not
// remove it from another player's view of the room.
type PlayerState struct {
	SessionID   string              `json:"session_id"`           // 32-character alphanumeric token
	GameID      string              `json:"game_id"`              // Game definition this state belongs to
	CurrentRoom string              `json:"current_room"`         // Always a valid room in the definition
	Inventory   []string            `json:"inventory"`            // Item IDs currently carried
	History     []string            `json:"history"`              // Previously visited rooms, append-only
	RoomItems   map[string][]string `json:"room_items,omitempty"` // Per-room override of items remaining
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewPlayerState creates the initial state for a session: the player
// stands in the start room with empty hands and no history.
func NewPlayerState(g *game.Game, sessionID string) *PlayerState {
	now := time.Now()
	return &PlayerState{
		SessionID:   sessionID,
		GameID:      g.ID,
		CurrentRoom: g.StartRoom,
		Inventory:   make([]string, 0),
		History:     make([]string, 0),
		RoomItems:   make(map[string][]string),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a deep copy of the state. The interpreter mutates a
// clone so a failed transition never leaves partial changes behind.
func (ps *PlayerState) Clone() *PlayerState {
	clone := *ps
	clone.Inventory = append([]string(nil), ps.Inventory...)
	clone.History = append([]string(nil), ps.History...)
	clone.RoomItems = make(map[string][]string, len(ps.RoomItems))
	for room, items := range ps.RoomItems {
		clone.RoomItems[room] = append([]string(nil), items...)
	}
	return &clone
}

// ItemsInRoom returns the items this session still sees in the given
// room. A room with no override entry holds its definition items;
// taking an item writes the remaining list into the override.
func (ps *PlayerState) ItemsInRoom(g *game.Game, roomID string) []string {
	if items, ok := ps.RoomItems[roomID]; ok {
		return items
	}
	return g.RoomItems(roomID)
}

// RemoveRoomItem removes one item from this session's view of the
// room, recording the remaining items in the override map. It returns
// false if the item is not present.
func (ps *PlayerState) RemoveRoomItem(g *game.Game, roomID, itemID string) bool {
	items := ps.ItemsInRoom(g, roomID)
	for i, id := range items {
		if id == itemID {
			remaining := make([]string, 0, len(items)-1)
			remaining = append(remaining, items[:i]...)
			remaining = append(remaining, items[i+1:]...)
			if ps.RoomItems == nil {
				ps.RoomItems = make(map[string][]string)
			}
			ps.RoomItems[roomID] = remaining
			return true
		}
	}
	return false
}

// Carrying reports whether the item is in the player's inventory.
func (ps *PlayerState) Carrying(itemID string) bool {
	for _, id := range ps.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}
