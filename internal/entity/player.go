package entity

const (
	DefaultNameX = "Player1"
	DefaultNameO = "Player2"
)

// Player is created once per game and never changes afterwards.
type Player struct {
	Name   string `json:"name"`
	Marker Marker `json:"marker"`
}

func NewPlayer(name string, marker Marker) Player {
	return Player{Name: name, Marker: marker}
}
