package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	DefaultComputerMark = entity.PlayerO
	DefaultHumanMark    = entity.PlayerX
)

// ComputeMove plays the best move for computer on game.
// It returns false without touching the game when it is not the computer's turn,
// so a caller can invoke it after every human move.
func ComputeMove(game *entity.Game, computer, human string) (entity.Move, bool, error) {
	ready, err := ReadyToMove(game, computer, human)
	if !ready {
		return entity.Move{}, false, err
	}

	move, _, err := BestMove(game.Board(), computer, human)
	if err != nil {
		return entity.Move{}, false, fmt.Errorf("failed to find a move: %w", err)
	}

	if err = game.MakeMove(move.Row, move.Col); err != nil {
		return entity.Move{}, false, fmt.Errorf("failed to make computer move: %w", err)
	}

	return move, true, nil
}

// ReadyToMove reports whether computer is the side to move on game.
// A finished game yields the same game-over error as entity.Game.MakeMove.
func ReadyToMove(game *entity.Game, computer, human string) (bool, error) {
	if game.IsGameOver() {
		return false, game.GameOverError()
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return false, err
	}

	if !validMarks(computer, human) {
		return false, fmt.Errorf("%w: computer %q, human %q", ErrInvalidMarks, computer, human)
	}

	return game.CurrentPlayer().Mark == computer, nil
}

func validMarks(computer, human string) bool {
	return (computer == entity.PlayerX || computer == entity.PlayerO) && human == entity.Opponent(computer)
}
