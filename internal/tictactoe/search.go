package tictactoe

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const winScore = 10

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidMarks     = errors.New("computer and human marks must be X and O")
)

// BestMove returns the empty cell with the highest minimax score for computer.
// Cells are scanned in row-major order and only a strictly better score replaces
// the current choice, so ties resolve to the first cell found.
func BestMove(board entity.Board, computer, human string) (entity.Move, int, error) {
	candidates := board.EmptyCells()
	if len(candidates) == 0 {
		return entity.Move{}, 0, ErrNoAvailableMoves
	}

	bestScore := math.MinInt
	var bestMove entity.Move

	for _, move := range candidates {
		child := board
		child[move.Row][move.Col] = computer

		score := Minimax(child, 0, false, computer, human)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, bestScore, nil
}

// Minimax scores board from the computer's point of view, searching every line of play
// to the end. Wins score 10-depth and losses depth-10, so quick wins and slow losses
// are preferred. The board is passed by value: each branch mutates its own copy.
func Minimax(board entity.Board, depth int, maximizing bool, computer, human string) int {
	if board.HasWinningLine(computer) {
		return winScore - depth
	}

	if board.HasWinningLine(human) {
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.EmptyCells() {
			child := board
			child[move.Row][move.Col] = computer
			best = max(best, Minimax(child, depth+1, false, computer, human))
		}
		return best
	}

	best := math.MaxInt
	for _, move := range board.EmptyCells() {
		child := board
		child[move.Row][move.Col] = human
		best = min(best, Minimax(child, depth+1, true, computer, human))
	}
	return best
}
