package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	actionNewGame   = "game:new"
	actionTurn      = "game:turn"
	actionGameState = "game:state"
	actionReset     = "game:reset"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type NewGamePayload struct {
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

type GamePayload struct {
	GameID string `json:"game_id"`
}

type ResetPayload struct {
	GameID  string `json:"game_id"`
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

// TurnPayload uses pointers so a missing row or col can be told apart from zero.
type TurnPayload struct {
	GameID string `json:"game_id"`
	Row    *int   `json:"row"`
	Col    *int   `json:"col"`
}

type ResponsePayload struct {
	Game *entity.Snapshot `json:"game,omitempty"`
}

type ErrorPayload struct {
	Error string           `json:"error"`
	Code  string           `json:"code"`
	Game  *entity.Snapshot `json:"game,omitempty"`
}
