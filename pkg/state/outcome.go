package state

// Outcome is the result of interpreting one action against one
// player state. A failed outcome (Success=false) is a normal gameplay
// response, not an error; the state is left unchanged.
type Outcome struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	CurrentRoom  string   `json:"current_room,omitempty"`  // Room after the action
	RoomChanged  bool     `json:"room_changed,omitempty"`  // True when the action moved the player
	FinalReached bool     `json:"final_reached,omitempty"` // True when CurrentRoom is the game's final room
	ItemsGained  []string `json:"items_gained,omitempty"`
	ItemsLost    []string `json:"items_lost,omitempty"`
}
