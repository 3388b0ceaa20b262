package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("invalid turn: %w", ErrInvalidCoordinate), "invalid_coordinate"},
		{ErrCellOccupied, "cell_occupied"},
		{ErrInvalidArity, "invalid_arity"},
		{fmt.Errorf("failed to play round: %w", ErrGameFinished), "game_finished"},
		{ErrPlayersNotSet, "players_not_set"},
		{ErrPlayersAlreadySet, "invalid_state"},
		{fmt.Errorf("session 1: %w", ErrNotFound), "not_found"},
		{fmt.Errorf("session 1: %w", ErrConflict), "conflict"},
		{errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err), tt.err.Error())
	}
}

func TestInvalidStateErrors(t *testing.T) {
	assert.ErrorIs(t, ErrGameFinished, ErrInvalidState)
	assert.ErrorIs(t, ErrPlayersNotSet, ErrInvalidState)
	assert.ErrorIs(t, ErrPlayersAlreadySet, ErrInvalidState)
}
