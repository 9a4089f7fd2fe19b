package entity

import "strings"

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 3
	MaxMoves  = BoardSize * BoardSize
)

// WinLines are the 8 lines that win when fully occupied by one mark.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid. It is a value type: assigning it copies every cell.
type Board [BoardSize][BoardSize]string

func (that Board) Cell(row, col int) string {
	return that[row][col]
}

func (that Board) IsEmptyAt(row, col int) bool {
	return that[row][col] == EmptyCell
}

// HasWinningLine reports whether mark occupies every cell of any line.
func (that Board) HasWinningLine(mark string) bool {
	if mark == EmptyCell {
		return false
	}

	for _, line := range WinLines {
		if that[line[0].Row][line[0].Col] == mark &&
			that[line[1].Row][line[1].Col] == mark &&
			that[line[2].Row][line[2].Col] == mark {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists the free cells in row-major order.
func (that Board) EmptyCells() []Move {
	cells := make([]Move, 0, MaxMoves)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Result returns the winning mark, PlayerTie for a full board without a line,
// or an empty string while the game can continue.
func (that Board) Result() string {
	switch {
	case that.HasWinningLine(PlayerX):
		return PlayerX
	case that.HasWinningLine(PlayerO):
		return PlayerO
	case that.IsFull():
		return PlayerTie
	default:
		return ""
	}
}

// Key encodes the board row by row, one character per cell and "-" for empty cells.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(MaxMoves)

	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteString(PlayerTie)
				continue
			}
			sb.WriteString(cell)
		}
	}

	return sb.String()
}

// Opponent returns the other mark.
func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
