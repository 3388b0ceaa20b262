package entity

import "time"

const (
	FirstPlayer  = 0
	SecondPlayer = 1
)

// Session is the full state of one game between two players.
type Session struct {
	ID        string    `json:"id"`
	Board     Board     `json:"board"`
	Players   []Player  `json:"players,omitempty"`
	Turn      int       `json:"turn"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Turn:      FirstPlayer,
		UpdatedAt: time.Now(),
	}
}

func (that *Session) HasPlayers() bool {
	return len(that.Players) == 2
}

// Clone - returns a copy that shares no memory with the session.
func (that *Session) Clone() *Session {
	clone := *that
	if that.Players != nil {
		clone.Players = make([]Player, len(that.Players))
		copy(clone.Players, that.Players)
	}
	return &clone
}
