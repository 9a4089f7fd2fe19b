package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")

	// ErrInvalidArgument is the parent of every "try again" failure.
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrCellOccupied       = errors.New("cell is already occupied")
)

// GameOverError is returned when a move is attempted on a finished game.
// It matches ErrGameFinished with errors.Is.
type GameOverError struct {
	// Winner is the winner's name, empty for a draw.
	Winner string
}

func (that *GameOverError) Error() string {
	if that.Winner != "" {
		return that.Winner + " has already won"
	}

	return "it's a draw, the board is already full"
}

func (that *GameOverError) Is(target error) bool {
	return target == ErrGameFinished
}
