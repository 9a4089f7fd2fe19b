package entity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedGame(t *testing.T) *Game {
	t.Helper()

	game := NewGame("123")
	game.Start("Player 1", "Player 2")

	return game
}

func playMoves(t *testing.T, game *Game, moves ...Move) {
	t.Helper()

	for i, move := range moves {
		require.NoError(t, game.MakeMove(move.Row, move.Col), "move %d %s", i, move)
	}
}

func TestGame_Start(t *testing.T) {
	t.Run("Assigns marks and gives the first turn to X", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")
		require.True(t, game.IsWaiting())

		// When: the game is started with two names
		game.Start("Player 1", "Player 2")

		// Then: players, turn and state are initialized
		assert.Equal(t, Player{Name: "Player 1", Mark: PlayerX}, game.PlayerX())
		assert.Equal(t, Player{Name: "Player 2", Mark: PlayerO}, game.PlayerO())
		assert.Equal(t, game.PlayerX(), game.CurrentPlayer())
		assert.Nil(t, game.Winner())
		assert.Equal(t, StatusOngoing, game.Status())
		assert.Equal(t, "123", game.ID())
		assert.Equal(t, Board{}, game.Board())
	})

	t.Run("Defaults the second player to the computer", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: only the first name is given
		game.Start("Player 1", "")

		// Then: O is played by the computer
		assert.Equal(t, Player{Name: ComputerName, Mark: PlayerO}, game.PlayerO())
	})

	t.Run("Starting again resets the game", func(t *testing.T) {
		// Given: a game with a few moves
		game := newStartedGame(t)
		playMoves(t, game, Move{1, 1}, Move{0, 0})

		// When: the game is started again
		game.Start("A", "B")

		// Then: the board and counters are reset
		assert.Equal(t, Board{}, game.Board())
		assert.Equal(t, 0, game.MovesCount())
		assert.Equal(t, PlayerX, game.CurrentPlayer().Mark)
	})
}

func TestGame_MakeMove(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: X plays the center
		err := game.MakeMove(1, 1)
		require.NoError(t, err)

		// Then: the cell is marked and the turn switches
		assert.Equal(t, PlayerX, game.Board().Cell(1, 1))
		assert.Nil(t, game.Winner())
		assert.Equal(t, game.PlayerO(), game.CurrentPlayer())
		assert.Equal(t, 1, game.MovesCount())
	})

	t.Run("Several moves", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: three moves are played
		playMoves(t, game, Move{1, 1}, Move{0, 0}, Move{2, 1})

		// Then: the board holds the marks and O is to move
		board := game.Board()
		assert.Equal(t, PlayerX, board.Cell(1, 1))
		assert.Equal(t, PlayerO, board.Cell(0, 0))
		assert.Equal(t, PlayerX, board.Cell(2, 1))
		assert.Nil(t, game.Winner())
		assert.Equal(t, game.PlayerO(), game.CurrentPlayer())
	})

	t.Run("Error on invalid coordinates", func(t *testing.T) {
		invalid := []Move{{22, 0}, {-1, 0}, {0, -1}, {3, 0}, {0, 3}}

		for _, move := range invalid {
			// Given: a started game with one move
			game := newStartedGame(t)
			playMoves(t, game, Move{2, 0})
			oldBoard := game.Board()

			// When: a move outside the board is attempted
			err := game.MakeMove(move.Row, move.Col)

			// Then: the coordinates are rejected and nothing changes
			require.ErrorIs(t, err, apperror.ErrInvalidCoordinates, "move %s", move)
			assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
			assert.Equal(t, oldBoard, game.Board())
			assert.Equal(t, 1, game.MovesCount())
		}
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where (2, 0) is taken by X
		game := newStartedGame(t)
		playMoves(t, game, Move{2, 0})
		oldBoard := game.Board()

		// When: O plays the same cell
		err := game.MakeMove(2, 0)

		// Then: the move is rejected and O is still to move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Equal(t, oldBoard, game.Board())
		assert.Equal(t, game.PlayerO(), game.CurrentPlayer())
	})

	t.Run("Error when game is not started", func(t *testing.T) {
		// Given: a game that was never started
		game := NewGame("123")

		// When: a move is attempted
		err := game.MakeMove(0, 0)

		// Then: the game refuses it
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.Equal(t, Board{}, game.Board())
	})

	t.Run("Zero game is not started", func(t *testing.T) {
		// Given: a zero value game
		game := &Game{}

		// When: a move is attempted
		err := game.MakeMove(0, 0)

		// Then: the game refuses it
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: X has won with column 1
		game := newStartedGame(t)
		playMoves(t, game, Move{1, 1}, Move{0, 0}, Move{2, 1}, Move{2, 2}, Move{0, 1})
		require.Equal(t, game.PlayerX(), *game.Winner())
		oldBoard := game.Board()

		for _, move := range []Move{{1, 0}, {0, 0}, {1, 2}} {
			// When: any further move is attempted, free or occupied
			err := game.MakeMove(move.Row, move.Col)

			// Then: the game is over with X named as the winner
			require.ErrorIs(t, err, apperror.ErrGameFinished)
			assert.EqualError(t, err, "Player 1 has already won")
		}

		var gameOver *apperror.GameOverError
		require.ErrorAs(t, game.MakeMove(1, 0), &gameOver)
		assert.Equal(t, "Player 1", gameOver.Winner)

		assert.Equal(t, oldBoard, game.Board())
		assert.Equal(t, game.PlayerX(), *game.Winner())
	})

	t.Run("Move after draw", func(t *testing.T) {
		// Given: a drawn game
		game := newStartedGame(t)
		playMoves(t, game,
			Move{1, 1}, Move{0, 0}, Move{2, 1},
			Move{0, 1}, Move{2, 2}, Move{2, 0},
			Move{1, 0}, Move{1, 2}, Move{0, 2},
		)

		// When: another move is attempted
		err := game.MakeMove(1, 1)

		// Then: the draw message is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.EqualError(t, err, "it's a draw, the board is already full")
	})
}

func TestGame_IsGameOver(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: X completes column 1
		playMoves(t, game, Move{1, 1}, Move{0, 0}, Move{2, 1}, Move{2, 2}, Move{0, 1})

		// Then: X wins and the game is over
		require.NotNil(t, game.Winner())
		assert.Equal(t, game.PlayerX(), *game.Winner())
		assert.True(t, game.IsGameOver())
		assert.True(t, game.IsFinished())
		// the turn still flips after the winning move
		assert.Equal(t, PlayerO, game.CurrentPlayer().Mark)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// When: the board is filled without a line
		playMoves(t, game,
			Move{1, 1}, Move{0, 0}, Move{2, 1},
			Move{0, 1}, Move{2, 2}, Move{2, 0},
			Move{1, 0}, Move{1, 2}, Move{0, 2},
		)

		// Then: there is no winner but the game is over
		assert.Nil(t, game.Winner())
		assert.True(t, game.IsGameOver())
		assert.Equal(t, MaxMoves, game.MovesCount())
	})

	t.Run("Ongoing", func(t *testing.T) {
		// Given: a game with two moves
		game := newStartedGame(t)
		playMoves(t, game, Move{1, 1}, Move{0, 0})

		// Then: it is not over
		assert.False(t, game.IsGameOver())
	})
}

func TestGame_RandomPlayouts(t *testing.T) {
	rnd := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic playouts

	for range 300 {
		game := newStartedGame(t)
		expectedTurn := PlayerX

		for !game.IsGameOver() {
			free := game.Board().EmptyCells()
			move := free[rnd.Intn(len(free))]

			require.Equal(t, expectedTurn, game.CurrentPlayer().Mark)
			require.NoError(t, game.MakeMove(move.Row, move.Col))
			expectedTurn = Opponent(expectedTurn)

			board := game.Board()
			hasLine := board.HasWinningLine(PlayerX) || board.HasWinningLine(PlayerO)

			// game over exactly when a line exists or the board is full
			require.Equal(t, hasLine || game.MovesCount() == MaxMoves, game.IsGameOver())
			require.Equal(t, hasLine, game.Winner() != nil)
			require.Equal(t, expectedTurn, game.CurrentPlayer().Mark)
		}

		err := game.MakeMove(0, 0)
		require.True(t, errors.Is(err, apperror.ErrGameFinished))
	}
}

func TestGame_BoardIsDefensiveCopy(t *testing.T) {
	// Given: a started game
	game := newStartedGame(t)

	// When: the returned board is modified
	board := game.Board()
	board[0][0] = PlayerO

	// Then: the game board is untouched
	assert.True(t, game.Board().IsEmptyAt(0, 0))
	require.NoError(t, game.MakeMove(0, 0))
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t)

		// Then: it is ongoing
		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		// Given: a game that was not started
		game := NewGame("123")

		// Then: it is not started
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		// Given: a won game
		game := newStartedGame(t)
		playMoves(t, game, Move{1, 1}, Move{0, 0}, Move{2, 1}, Move{2, 2}, Move{0, 1})

		// Then: it is finished
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}
