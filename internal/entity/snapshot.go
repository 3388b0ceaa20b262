package entity

// Snapshot is the read-only view of a session handed to display adapters.
type Snapshot struct {
	ID            string   `json:"id"`
	Board         Grid     `json:"board"`
	Status        Status   `json:"status"`
	CurrentPlayer *Player  `json:"current_player,omitempty"`
	Players       []Player `json:"players"`
}
