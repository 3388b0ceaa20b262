package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_PlaceMarker(t *testing.T) {
	t.Run("Every cell accepts exactly one marker", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				// Given: an empty board
				board := NewBoard()

				// When: placing twice on the same cell
				first := board.PlaceMarker(row, col, MarkerX)
				second := board.PlaceMarker(row, col, MarkerO)

				// Then: only the first placement succeeds
				assert.True(t, first, "first placement at (%d, %d)", row, col)
				assert.False(t, second, "second placement at (%d, %d)", row, col)
				assert.Equal(t, MarkerX, board.Cell(row, col))
			}
		}
	})

	t.Run("Out of range coordinates are rejected", func(t *testing.T) {
		board := NewBoard()

		for _, coord := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
			assert.False(t, board.PlaceMarker(coord[0], coord[1], MarkerX))
		}

		// Then: the board is unchanged
		assert.Equal(t, Grid{}, board.GetBoard())
	})

	t.Run("Empty marker is rejected", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.PlaceMarker(1, 1, EmptyCell))
		assert.Equal(t, Grid{}, board.GetBoard())
	})
}

func TestBoard_Place(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.Place(0, 0, MarkerX))

	assert.ErrorIs(t, board.Place(0, 0, MarkerO), apperror.ErrCellOccupied)
	assert.ErrorIs(t, board.Place(3, 0, MarkerO), apperror.ErrInvalidCoordinate)
	assert.ErrorIs(t, board.Place(1, 1, Marker("Z")), apperror.ErrInvalidMarker)
}

func TestBoard_GetBoardReturnsCopy(t *testing.T) {
	// Given: a board with one marker
	board := NewBoard()
	require.True(t, board.PlaceMarker(1, 1, MarkerX))

	// When: the snapshot is changed
	snapshot := board.GetBoard()
	snapshot[1][1] = MarkerO
	snapshot[0][0] = MarkerO

	// Then: the board keeps its own cells
	assert.Equal(t, MarkerX, board.Cell(1, 1))
	assert.Equal(t, EmptyCell, board.Cell(0, 0))
}

func TestBoard_Reset(t *testing.T) {
	// Given: a full board
	board := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			require.True(t, board.PlaceMarker(row, col, MarkerO))
		}
	}
	require.True(t, board.IsFull())

	// When: the board is reset
	board.Reset()

	// Then: every cell is empty again and can be played
	assert.Equal(t, Grid{}, board.GetBoard())
	assert.False(t, board.IsFull())
	assert.True(t, board.PlaceMarker(2, 2, MarkerX))
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Encodes as a grid of strings", func(t *testing.T) {
		board := NewBoard()
		require.True(t, board.PlaceMarker(0, 2, MarkerO))

		data, err := json.Marshal(board)

		require.NoError(t, err)
		assert.JSONEq(t, `[["","","O"],["","",""],["","",""]]`, string(data))
	})

	t.Run("Rejects unknown markers", func(t *testing.T) {
		var board Board

		err := json.Unmarshal([]byte(`[["Z","",""],["","",""],["","",""]]`), &board)

		require.ErrorIs(t, err, apperror.ErrInvalidMarker)
	})
}
