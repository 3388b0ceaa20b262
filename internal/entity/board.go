package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 3

type Marker string

const (
	EmptyCell Marker = ""
	MarkerX   Marker = "X"
	MarkerO   Marker = "O"
)

// IsPlayer reports whether the marker belongs to one of the two players.
func (that Marker) IsPlayer() bool {
	return that == MarkerX || that == MarkerO
}

func (that Marker) Valid() bool {
	return that == EmptyCell || that.IsPlayer()
}

// Opponent - returns the marker of the other player.
func (that Marker) Opponent() Marker {
	if that == MarkerX {
		return MarkerO
	}
	return MarkerX
}

// Grid is a snapshot of the board cells indexed as [row][col].
type Grid [BoardSize][BoardSize]Marker

// Board holds the cells of the game. The zero value is an empty board.
type Board struct {
	cells Grid
}

func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromGrid - builds a board from the snapshot, it fails if the snapshot holds unknown markers.
func NewBoardFromGrid(grid Grid) (*Board, error) {
	for row := range grid {
		for col := range grid[row] {
			if !grid[row][col].Valid() {
				return nil, fmt.Errorf("%w: %q at (%d, %d)", apperror.ErrInvalidMarker, grid[row][col], row, col)
			}
		}
	}

	return &Board{cells: grid}, nil
}

func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Place - puts the marker into an empty cell.
func (that *Board) Place(row, col int, marker Marker) error {
	if !InRange(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	if !marker.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	if that.cells[row][col] != EmptyCell {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = marker

	return nil
}

// PlaceMarker - reports whether the marker was placed; the board is left unchanged on false.
func (that *Board) PlaceMarker(row, col int, marker Marker) bool {
	return that.Place(row, col, marker) == nil
}

// Cell returns EmptyCell for coordinates outside the board.
func (that *Board) Cell(row, col int) Marker {
	if !InRange(row, col) {
		return EmptyCell
	}
	return that.cells[row][col]
}

// GetBoard - returns a copy of the cells.
func (that *Board) GetBoard() Grid {
	return that.cells
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}
	return true
}

func (that *Board) Reset() {
	that.cells = Grid{}
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.cells)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var grid Grid
	if err := json.Unmarshal(data, &grid); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := NewBoardFromGrid(grid)
	if err != nil {
		return err
	}

	*that = *board

	return nil
}
