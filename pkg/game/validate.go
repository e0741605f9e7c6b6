package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the requested game does not exist in the catalog.
var ErrNotFound = errors.New("game not found")

// ValidationError reports every broken reference found in a game
// definition. A definition that fails validation is never served.
type ValidationError struct {
	GameID   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid game definition %q: %s", e.GameID, strings.Join(e.Problems, "; "))
}

// Validate checks the referential invariants of the definition:
// the start room exists, every exit resolves to a room in the same
// definition, and every placed item has a known item ID. It returns
// a *ValidationError naming each broken reference, so authoring
// mistakes surface at load time rather than mid-play.
func (g *Game) Validate() error {
	var problems []string

	if g.ID == "" {
		problems = append(problems, "missing game id")
	}
	if g.Title == "" {
		problems = append(problems, "missing title")
	}
	if len(g.Rooms) == 0 {
		problems = append(problems, "no rooms defined")
	}

	if g.StartRoom == "" {
		problems = append(problems, "missing start_room")
	} else if _, ok := g.Rooms[g.StartRoom]; !ok {
		problems = append(problems, fmt.Sprintf("start_room %q is not a defined room", g.StartRoom))
	}

	if g.FinalRoom != "" {
		if _, ok := g.Rooms[g.FinalRoom]; !ok {
			problems = append(problems, fmt.Sprintf("final_room %q is not a defined room", g.FinalRoom))
		}
	}

	for roomID, room := range g.Rooms {
		if room.ID != "" && room.ID != roomID {
			problems = append(problems, fmt.Sprintf("room %q has mismatched id %q", roomID, room.ID))
		}
		for direction, dest := range room.Exits {
			if direction == "" {
				problems = append(problems, fmt.Sprintf("room %q has an exit with an empty direction", roomID))
			}
			if _, ok := g.Rooms[dest]; !ok {
				problems = append(problems, fmt.Sprintf("room %q exit %q leads to undefined room %q", roomID, direction, dest))
			}
		}
		seen := make(map[string]bool, len(room.Items))
		for _, itemID := range room.Items {
			if seen[itemID] {
				problems = append(problems, fmt.Sprintf("room %q lists item %q more than once", roomID, itemID))
				continue
			}
			seen[itemID] = true
			if g.Items != nil {
				if _, ok := g.Items[itemID]; !ok {
					problems = append(problems, fmt.Sprintf("room %q places undefined item %q", roomID, itemID))
				}
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{GameID: g.ID, Problems: problems}
	}
	return nil
}
