package game

// Item is an object a player can pick up and examine.
type Item struct {
	Name        string `json:"name,omitempty"`        // Display name; derived from the ID when empty
	Description string `json:"description,omitempty"` // Shown on examine
}

// Room is a single location in the game world.
type Room struct {
	ID          string            `json:"id"`                    // Also the key in the rooms map
	Name        string            `json:"name,omitempty"`        // Display name; derived from the ID when empty
	Description string            `json:"description,omitempty"` // Scene description
	Exits       map[string]string `json:"exits,omitempty"`       // Direction → room ID
	Items       []string          `json:"items,omitempty"`       // Items initially present in this room
}

// Game is the immutable definition of one playable title:
// a room graph with placed items. It is loaded once, validated,
// and treated as read-only for the lifetime of the process.
type Game struct {
	ID        string          `json:"id"`                   // Stable identifier, lowercase snake_case
	Title     string          `json:"title"`                // Display name of the game
	Rooms     map[string]Room `json:"rooms"`                // Map of room IDs to rooms
	Items     map[string]Item `json:"items,omitempty"`      // Item descriptions, keyed by item ID
	StartRoom string          `json:"start_room"`           // Room where every new session begins
	FinalRoom string          `json:"final_room,omitempty"` // Optional goal room; reaching it flags the outcome
}

// Info is the catalog entry for one game.
type Info struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Room returns the room with the given ID, or false if it
// doesn't exist in this definition.
func (g *Game) Room(id string) (Room, bool) {
	r, ok := g.Rooms[id]
	return r, ok
}

// RoomItems returns the items initially placed in the given room,
// per the definition. Callers must not mutate the returned slice.
func (g *Game) RoomItems(roomID string) []string {
	return g.Rooms[roomID].Items
}
