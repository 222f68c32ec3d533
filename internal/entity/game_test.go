package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Marks an empty cell for the player", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: player X places a mark in the center
		err := board.Place(1, 1, PlayerX)
		require.NoError(t, err)

		// Then: only the center cell should change, and it should hold X
		expected := Board{}
		expected[1][1] = CellX
		require.Equal(t, expected, board)
	})

	t.Run("Player O places an O mark", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: player O places a mark in the corner
		err := board.Place(2, 0, PlayerO)

		// Then: the corner should hold O
		require.NoError(t, err)
		assert.Equal(t, CellO, board.Cell(2, 0))
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a board where cell (0,0) is occupied by player X
		board := Board{}
		require.NoError(t, board.Place(0, 0, PlayerX))
		before := board

		// When: player O tries to place a mark in the same cell
		err := board.Place(0, 0, PlayerO)

		// Then: an ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: the board should remain unchanged
		require.Equal(t, before, board)
	})

	t.Run("Error on coordinates outside the board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: coordinates outside the grid are passed
		for _, coords := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			err := board.Place(coords[0], coords[1], PlayerX)

			// Then: an ErrOutOfRange error should be returned
			assert.ErrorIs(t, err, apperror.ErrOutOfRange)
		}

		// And: the board should stay empty
		assert.Equal(t, 9, board.Count(EmptyCell))
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		board := Board{}

		assert.False(t, board.IsFull())
	})

	t.Run("Board with all cells marked is full", func(t *testing.T) {
		board := Board{
			{CellX, CellO, CellX},
			{CellO, CellX, CellO},
			{CellO, CellX, CellO},
		}

		assert.True(t, board.IsFull())
		assert.Equal(t, 4, board.Count(CellX))
		assert.Equal(t, 5, board.Count(CellO))
	})
}

func TestBoard_Render(t *testing.T) {
	// Given: a board with a few marks
	board := Board{}
	require.NoError(t, board.Place(0, 0, PlayerX))
	require.NoError(t, board.Place(1, 2, PlayerO))

	// When: rendering the board
	rendered := board.Render()

	// Then: it should contain headers, separators and marks in place
	expected := "\n" +
		"   0   1   2\n" +
		"  -----------\n" +
		"0| X |   |   |\n" +
		"  -----------\n" +
		"1|   |   | O |\n" +
		"  -----------\n" +
		"2|   |   |   |\n" +
		"  -----------\n" +
		"\n"
	assert.Equal(t, expected, rendered)
}

func TestPlayer(t *testing.T) {
	t.Run("Next alternates between players", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Next())
		assert.Equal(t, PlayerX, PlayerO.Next())
	})

	t.Run("Mark matches the player", func(t *testing.T) {
		assert.Equal(t, CellX, PlayerX.Mark())
		assert.Equal(t, CellO, PlayerO.Mark())

		owner, ok := CellO.Owner()
		assert.True(t, ok)
		assert.Equal(t, PlayerO, owner)

		_, ok = EmptyCell.Owner()
		assert.False(t, ok)
	})

	t.Run("ParsePlayer accepts both cases", func(t *testing.T) {
		player, err := ParsePlayer("o")
		require.NoError(t, err)
		assert.Equal(t, PlayerO, player)

		player, err = ParsePlayer("X")
		require.NoError(t, err)
		assert.Equal(t, PlayerX, player)
	})

	t.Run("ParsePlayer rejects unknown marks", func(t *testing.T) {
		_, err := ParsePlayer("Z")

		assert.ErrorIs(t, err, ErrUnknownPlayer)
	})
}

func TestTask_String(t *testing.T) {
	t.Run("Pending task", func(t *testing.T) {
		task := &Task{ID: 1, Description: "buy milk"}

		assert.Equal(t, "[ ] 1: buy milk", task.String())
	})

	t.Run("Completed task", func(t *testing.T) {
		task := &Task{ID: 7, Description: "write tests", Completed: true}

		assert.Equal(t, "[x] 7: write tests", task.String())
	})
}
