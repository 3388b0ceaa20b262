package entity

type State string

const (
	StateInProgress State = "in_progress"
	StateWin        State = "win"
	StateTie        State = "tie"
)

// Status is derived from the board and never stored.
type Status struct {
	State  State  `json:"state"`
	Winner Marker `json:"winner,omitempty"`
}

func InProgress() Status {
	return Status{State: StateInProgress}
}

func Win(marker Marker) Status {
	return Status{State: StateWin, Winner: marker}
}

func Tie() Status {
	return Status{State: StateTie}
}

func (that Status) IsTerminal() bool {
	return that.State == StateWin || that.State == StateTie
}

func (that Status) String() string {
	if that.State == StateWin {
		return string(that.State) + "(" + string(that.Winner) + ")"
	}
	return string(that.State)
}

// WinLines holds the eight lines of three cells, checked in this order.
var WinLines = [8][3][2]int{
	// rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// DetermineStatus - returns the winner of the first completed line, a tie for a full board, or in progress.
func DetermineStatus(grid Grid) Status {
	for _, line := range WinLines {
		a := grid[line[0][0]][line[0][1]]
		b := grid[line[1][0]][line[1][1]]
		c := grid[line[2][0]][line[2][1]]

		if a != EmptyCell && a == b && b == c {
			return Win(a)
		}
	}

	// the game will continue until all the squares are full
	for _, row := range grid {
		for _, cell := range row {
			if cell == EmptyCell {
				return InProgress()
			}
		}
	}

	return Tie()
}
