package lookup

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement(t *testing.T) {
	t.Run("Returns the element at a valid index", func(t *testing.T) {
		value, err := Element(Values(), 3)

		require.NoError(t, err)
		assert.Equal(t, 89, value)
	})

	t.Run("First and last index", func(t *testing.T) {
		first, err := Element(Values(), 0)
		require.NoError(t, err)
		last, err := Element(Values(), len(Values())-1)
		require.NoError(t, err)

		assert.Equal(t, 45, first)
		assert.Equal(t, 66, last)
	})

	t.Run("Out of range index", func(t *testing.T) {
		for _, index := range []int{-1, 5, 100} {
			_, err := Element(Values(), index)

			assert.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
		}
	})

	t.Run("Callers cannot change the fixed values", func(t *testing.T) {
		// Given: a copy modified by the caller
		copied := Values()
		copied[0] = -1

		// Then: later lookups should still see the original value
		value, err := Element(Values(), 0)
		require.NoError(t, err)
		assert.Equal(t, 45, value)
	})
}
