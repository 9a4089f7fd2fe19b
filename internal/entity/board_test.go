package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_HasWinningLine(t *testing.T) {
	t.Run("Every line wins for X", func(t *testing.T) {
		for _, line := range WinLines {
			// Given: a board with X on all cells of one line
			var board Board
			for _, cell := range line {
				board[cell.Row][cell.Col] = PlayerX
			}

			// Then: X has a winning line and O does not
			assert.True(t, board.HasWinningLine(PlayerX), "line %v", line)
			assert.False(t, board.HasWinningLine(PlayerO), "line %v", line)
		}
	})

	t.Run("Mixed line does not win", func(t *testing.T) {
		// Given: a row with two X and one O
		board := Board{
			{PlayerX, PlayerX, PlayerO},
			{EmptyCell, EmptyCell, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}

		// Then: nobody wins
		assert.False(t, board.HasWinningLine(PlayerX))
		assert.False(t, board.HasWinningLine(PlayerO))
	})

	t.Run("Empty mark never wins", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// Then: the empty mark is not treated as a line owner
		assert.False(t, board.HasWinningLine(EmptyCell))
	})
}

func TestBoard_Result(t *testing.T) {
	t.Run("Winner O", func(t *testing.T) {
		// Given: O owns the anti-diagonal
		board := Board{
			{PlayerX, PlayerX, PlayerO},
			{EmptyCell, PlayerO, EmptyCell},
			{PlayerO, EmptyCell, PlayerX},
		}

		// When: evaluating the board
		result := board.Result()

		// Then: O is the winner
		assert.Equal(t, PlayerO, result)
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a full board without a line
		board := Board{
			{PlayerO, PlayerO, PlayerX},
			{PlayerX, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerX},
		}

		// When: evaluating the board
		result := board.Result()

		// Then: the game is a tie
		assert.Equal(t, PlayerTie, result)
	})

	t.Run("Ongoing", func(t *testing.T) {
		// Given: a board with free cells and no line
		board := Board{
			{PlayerX, PlayerO, EmptyCell},
			{EmptyCell, PlayerX, EmptyCell},
			{EmptyCell, EmptyCell, PlayerO},
		}

		// Then: there is no result yet
		assert.Equal(t, "", board.Result())
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with three occupied cells
	board := Board{
		{PlayerX, EmptyCell, EmptyCell},
		{EmptyCell, PlayerO, EmptyCell},
		{EmptyCell, EmptyCell, PlayerX},
	}

	// When: listing the free cells
	cells := board.EmptyCells()

	// Then: they come in row-major order
	require.Equal(t, []Move{
		{0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1},
	}, cells)
	assert.False(t, board.IsFull())
}

func TestBoard_Key(t *testing.T) {
	// Given: a partially played board
	board := Board{
		{PlayerX, EmptyCell, EmptyCell},
		{EmptyCell, PlayerO, EmptyCell},
		{EmptyCell, EmptyCell, PlayerX},
	}

	// Then: the key has one character per cell
	assert.Equal(t, "X---O---X", board.Key())
	assert.Equal(t, "---------", Board{}.Key())
}

func TestBoard_IsValueType(t *testing.T) {
	// Given: a board and its copy
	board := Board{}
	snapshot := board

	// When: the copy is modified
	snapshot[1][1] = PlayerX

	// Then: the original stays untouched
	assert.True(t, board.IsEmptyAt(1, 1))
	assert.Equal(t, PlayerX, snapshot.Cell(1, 1))
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerO, Opponent(PlayerX))
	assert.Equal(t, PlayerX, Opponent(PlayerO))
}
