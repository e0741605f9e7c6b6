package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// Gameplay messages. These are part of the client contract: a failed
// move or a missing item is a normal response, never an error.
const (
	MsgMoved              = "Moved successfully."
	MsgInvalidMove        = "Invalid move."
	MsgItemNotFound       = "Item not found."
	MsgItemNotInInventory = "Item not in inventory."
)

// Interpret applies one command to a player state and returns the
// resulting state and outcome. It is a pure function of its inputs:
// the passed state is never mutated, and a failed outcome returns it
// untouched. All I/O lives in the caller.
func Interpret(g *game.Game, ps *state.PlayerState, cmd Command) (*state.PlayerState, state.Outcome) {
	switch cmd.Type {
	case CmdMove:
		return interpretMove(g, ps, cmd.Arg)
	case CmdTake:
		return interpretTake(g, ps, cmd.Arg)
	case CmdExamine:
		return ps, interpretExamine(g, ps, cmd.Arg)
	case CmdLook:
		return ps, interpretLook(g, ps)
	case CmdInventory:
		return ps, interpretInventory(g, ps)
	default:
		return ps, failure(g, ps, MsgInvalidMove)
	}
}

func interpretMove(g *game.Game, ps *state.PlayerState, direction string) (*state.PlayerState, state.Outcome) {
	room, ok := g.Room(ps.CurrentRoom)
	if !ok {
		// Unreachable for validated definitions; treat as a non-event.
		return ps, failure(g, ps, MsgInvalidMove)
	}

	dest, ok := room.Exits[direction]
	if !ok {
		return ps, failure(g, ps, MsgInvalidMove)
	}

	next := ps.Clone()
	next.History = append(next.History, next.CurrentRoom)
	next.CurrentRoom = dest

	return next, state.Outcome{
		Success:      true,
		Message:      MsgMoved,
		CurrentRoom:  dest,
		RoomChanged:  true,
		FinalReached: g.FinalRoom != "" && dest == g.FinalRoom,
	}
}

func interpretTake(g *game.Game, ps *state.PlayerState, itemID string) (*state.PlayerState, state.Outcome) {
	if itemID == "" {
		return ps, failure(g, ps, MsgItemNotFound)
	}

	next := ps.Clone()
	if !next.RemoveRoomItem(g, next.CurrentRoom, itemID) {
		return ps, failure(g, ps, MsgItemNotFound)
	}
	next.Inventory = append(next.Inventory, itemID)

	return next, state.Outcome{
		Success:      true,
		Message:      fmt.Sprintf("Took %s.", g.ItemName(itemID)),
		CurrentRoom:  next.CurrentRoom,
		FinalReached: g.FinalRoom != "" && next.CurrentRoom == g.FinalRoom,
		ItemsGained:  []string{itemID},
	}
}

func interpretExamine(g *game.Game, ps *state.PlayerState, itemID string) state.Outcome {
	if itemID == "" || !ps.Carrying(itemID) {
		return failure(g, ps, MsgItemNotInInventory)
	}

	message := fmt.Sprintf("Examined %s.", g.ItemName(itemID))
	if item, ok := g.Items[itemID]; ok && item.Description != "" {
		message = item.Description
	}

	return state.Outcome{
		Success:      true,
		Message:      message,
		CurrentRoom:  ps.CurrentRoom,
		FinalReached: g.FinalRoom != "" && ps.CurrentRoom == g.FinalRoom,
	}
}

func interpretLook(g *game.Game, ps *state.PlayerState) state.Outcome {
	room, ok := g.Room(ps.CurrentRoom)
	if !ok {
		return failure(g, ps, MsgInvalidMove)
	}

	var b strings.Builder
	b.WriteString(room.Description)

	if items := ps.ItemsInRoom(g, ps.CurrentRoom); len(items) > 0 {
		names := make([]string, len(items))
		for i, id := range items {
			names[i] = g.ItemName(id)
		}
		fmt.Fprintf(&b, " You see: %s.", strings.Join(names, ", "))
	}

	if len(room.Exits) > 0 {
		directions := make([]string, 0, len(room.Exits))
		for direction := range room.Exits {
			directions = append(directions, direction)
		}
		sort.Strings(directions)
		fmt.Fprintf(&b, " Exits: %s.", strings.Join(directions, ", "))
	}

	return state.Outcome{
		Success:      true,
		Message:      b.String(),
		CurrentRoom:  ps.CurrentRoom,
		FinalReached: g.FinalRoom != "" && ps.CurrentRoom == g.FinalRoom,
	}
}

func interpretInventory(g *game.Game, ps *state.PlayerState) state.Outcome {
	message := "You are not carrying anything."
	if len(ps.Inventory) > 0 {
		names := make([]string, len(ps.Inventory))
		for i, id := range ps.Inventory {
			names[i] = g.ItemName(id)
		}
		message = fmt.Sprintf("You are carrying: %s.", strings.Join(names, ", "))
	}

	return state.Outcome{
		Success:      true,
		Message:      message,
		CurrentRoom:  ps.CurrentRoom,
		FinalReached: g.FinalRoom != "" && ps.CurrentRoom == g.FinalRoom,
	}
}

// failure builds the no-state-change outcome shared by every
// gameplay non-event.
func failure(g *game.Game, ps *state.PlayerState, message string) state.Outcome {
	return state.Outcome{
		Success:      false,
		Message:      message,
		CurrentRoom:  ps.CurrentRoom,
		FinalReached: g.FinalRoom != "" && ps.CurrentRoom == g.FinalRoom,
	}
}
