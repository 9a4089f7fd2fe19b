package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const rowSeparator = "--+---+--"

// Render draws the board, empty cells as spaces.
func Render(board entity.Board) string {
	rows := make([]string, 0, entity.BoardSize)

	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			cell := board.Cell(row, col)
			if cell == entity.EmptyCell {
				cell = " "
			}
			cells = append(cells, cell)
		}
		rows = append(rows, strings.Join(cells, " | "))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

// Result describes how a finished game ended.
func Result(snapshot usecase.Snapshot) string {
	if snapshot.Winner != nil {
		return fmt.Sprintf("%s wins!", snapshot.Winner.Name)
	}

	return "It's a draw!"
}
