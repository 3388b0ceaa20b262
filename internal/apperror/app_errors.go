package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("coordinate is out of board range")
	ErrInvalidMarker     = errors.New("invalid marker")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidArity      = errors.New("turn requires integer row and col")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("session was changed concurrently, retry the request")

	// ErrInvalidState is wrapped by every error caused by calling an operation at the wrong point of the game.
	ErrInvalidState = errors.New("invalid game state")

	ErrPlayersNotSet     = fmt.Errorf("%w: players are not set up", ErrInvalidState)
	ErrPlayersAlreadySet = fmt.Errorf("%w: players are already set up", ErrInvalidState)
	ErrGameFinished      = fmt.Errorf("%w: game is already finished", ErrInvalidState)
)

// Code - returns a stable identifier of the error for clients, "internal" for unknown errors.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, ErrInvalidMarker):
		return "invalid_marker"
	case errors.Is(err, ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, ErrInvalidArity):
		return "invalid_arity"
	case errors.Is(err, ErrGameFinished):
		return "game_finished"
	case errors.Is(err, ErrPlayersNotSet):
		return "players_not_set"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
