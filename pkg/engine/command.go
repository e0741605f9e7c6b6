package engine

import "strings"

type CommandType string

const (
	CmdMove      CommandType = "move"
	CmdTake      CommandType = "take"
	CmdExamine   CommandType = "examine"
	CmdLook      CommandType = "look"
	CmdInventory CommandType = "inventory"
	CmdNone      CommandType = "" // Empty or unparseable input
)

// Command is the parsed form of one player action. Arg holds the
// exit direction for CmdMove and the item ID for CmdTake/CmdExamine.
type Command struct {
	Type CommandType
	Arg  string
}

// ParseAction turns a raw action string into a Command. Input is
// trimmed and lower-cased; multi-word input is split into a verb and
// argument. A bare token that isn't a known verb is treated as a
// movement attempt, since exit directions are defined per room and
// only the interpreter can tell a real exit from nonsense.
func ParseAction(input string) Command {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return Command{Type: CmdNone}
	}

	verb, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "take", "get", "grab":
		return Command{Type: CmdTake, Arg: normalizeItemID(arg)}
	case "examine", "inspect", "x":
		return Command{Type: CmdExamine, Arg: normalizeItemID(arg)}
	case "look", "l":
		return Command{Type: CmdLook}
	case "inventory", "i":
		return Command{Type: CmdInventory}
	}

	if arg != "" {
		// Multi-word input with an unknown verb is not a move.
		return Command{Type: CmdNone}
	}
	return Command{Type: CmdMove, Arg: verb}
}

// normalizeItemID converts a spoken item name to its snake_case ID,
// e.g. "rusty lantern" → "rusty_lantern".
func normalizeItemID(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
