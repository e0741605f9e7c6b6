package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// DisplayName returns the human-readable name for a snake_case
// identifier, e.g. "rusty_lantern" → "Rusty Lantern". Explicit names
// in the definition take precedence over derivation.
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// ItemName returns the display name for an item ID, preferring the
// name authored in the definition.
func (g *Game) ItemName(itemID string) string {
	if item, ok := g.Items[itemID]; ok && item.Name != "" {
		return item.Name
	}
	return DisplayName(itemID)
}

// RoomName returns the display name for a room ID, preferring the
// name authored in the definition.
func (g *Game) RoomName(roomID string) string {
	if room, ok := g.Rooms[roomID]; ok && room.Name != "" {
		return room.Name
	}
	return DisplayName(roomID)
}
