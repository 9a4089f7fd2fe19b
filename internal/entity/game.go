package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game holds the state of a single match. It is not safe for concurrent use.
type Game struct {
	id     string
	board  Board
	status string

	playerX Player
	playerO Player

	turn   string
	moves  int
	winner *Player
}

func NewGame(id string) *Game {
	return &Game{
		id:     id,
		status: StatusWaiting,
	}
}

// Start assigns X to nameX and O to nameO and gives the first turn to X.
// An empty nameO falls back to ComputerName. Calling Start again resets the game.
func (that *Game) Start(nameX, nameO string) {
	if nameO == "" {
		nameO = ComputerName
	}

	that.board = Board{}
	that.playerX = NewPlayer(nameX, PlayerX)
	that.playerO = NewPlayer(nameO, PlayerO)
	that.turn = PlayerX
	that.moves = 0
	that.winner = nil
	that.status = StatusOngoing
}

// MakeMove places the current player's mark at (row, col).
// A failed move leaves the game untouched.
func (that *Game) MakeMove(row, col int) error {
	if that.IsWaiting() {
		return apperror.ErrGameIsNotStarted
	}

	move := Move{Row: row, Col: col}
	if !move.IsValid() {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidArgument, apperror.ErrInvalidCoordinates, move)
	}

	if that.IsGameOver() {
		return that.GameOverError()
	}

	if !that.board.IsEmptyAt(row, col) {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidArgument, apperror.ErrCellOccupied, move)
	}

	mover := that.CurrentPlayer()

	that.board[row][col] = mover.Mark
	that.moves++

	// only the mover can complete a line with this move
	if that.board.HasWinningLine(mover.Mark) {
		that.winner = &mover
	}

	if that.IsGameOver() {
		that.status = StatusFinished
	}

	that.turn = Opponent(that.turn)

	return nil
}

// GameOverError describes why no more moves are accepted.
func (that *Game) GameOverError() error {
	if that.winner != nil {
		return &apperror.GameOverError{Winner: that.winner.Name}
	}

	return &apperror.GameOverError{}
}

func (that *Game) IsGameOver() bool {
	return that.winner != nil || that.moves == MaxMoves
}

// Winner returns a copy of the winning player, or nil for a draw or an unfinished game.
func (that *Game) Winner() *Player {
	if that.winner == nil {
		return nil
	}

	winner := *that.winner
	return &winner
}

// Board returns a copy of the board.
func (that *Game) Board() Board {
	return that.board
}

func (that *Game) CurrentPlayer() Player {
	if that.turn == PlayerO {
		return that.playerO
	}
	return that.playerX
}

func (that *Game) PlayerX() Player {
	return that.playerX
}

func (that *Game) PlayerO() Player {
	return that.playerO
}

func (that *Game) MovesCount() int {
	return that.moves
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) IsFinished() bool {
	return that.status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.status == StatusOngoing
}

// IsWaiting is also true for a zero Game that was never started.
func (that *Game) IsWaiting() bool {
	return that.status == StatusWaiting || that.status == ""
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return that.GameOverError()
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.status)
	}
}
