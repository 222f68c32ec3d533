package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.CellX
	o = entity.CellO
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Winner X on the top row", func(t *testing.T) {
		// Given: row 0 is all X and the rest is empty
		board := entity.Board{
			{x, x, x},
			{e, e, e},
			{e, e, e},
		}

		// When: evaluating the board
		state := Evaluate(board)

		// Then: player X should be declared the winner
		require.Equal(t, entity.Win(entity.PlayerX), state)
	})

	t.Run("Winner O on a column", func(t *testing.T) {
		// Given: column 1 is all O
		board := entity.Board{
			{x, o, x},
			{e, o, x},
			{e, o, e},
		}

		// When: evaluating the board
		state := Evaluate(board)

		// Then: player O should be declared the winner
		require.Equal(t, entity.Win(entity.PlayerO), state)
	})

	t.Run("Winner on both diagonals", func(t *testing.T) {
		main := entity.Board{
			{o, x, e},
			{x, o, e},
			{e, x, o},
		}
		anti := entity.Board{
			{o, o, x},
			{e, x, e},
			{x, e, e},
		}

		assert.Equal(t, entity.Win(entity.PlayerO), Evaluate(main))
		assert.Equal(t, entity.Win(entity.PlayerX), Evaluate(anti))
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		// Given: a full board where the last move completed a line
		board := entity.Board{
			{x, o, x},
			{o, x, o},
			{o, x, x},
		}

		// When: evaluating the board
		state := Evaluate(board)

		// Then: it should be a win for X
		require.Equal(t, entity.Win(entity.PlayerX), state)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a full board with no line of three
		board := entity.Board{
			{x, o, x},
			{o, x, o},
			{o, x, o},
		}

		// When: evaluating the board
		state := Evaluate(board)

		// Then: the game should be declared a draw
		require.Equal(t, entity.Draw(), state)
	})

	t.Run("Empty board is in progress", func(t *testing.T) {
		state := Evaluate(entity.Board{})

		require.Equal(t, entity.InProgress(), state)
		assert.False(t, state.IsFinished())
	})

	t.Run("Partial board without a line is in progress", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{e, o, e},
			{x, e, e},
		}

		require.Equal(t, entity.InProgress(), Evaluate(board))
	})

	t.Run("Evaluation is pure", func(t *testing.T) {
		// Given: a board in some state
		board := entity.Board{
			{x, o, e},
			{e, x, e},
			{o, e, e},
		}
		before := board

		// When: evaluating twice
		first := Evaluate(board)
		second := Evaluate(board)

		// Then: both results match and the board is unchanged
		assert.Equal(t, first, second)
		assert.Equal(t, before, board)
	})
}
