package lookup

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

var values = [...]int{45, 15, 24, 89, 66}

// Values - a fresh copy of the fixed array the lookup command reads from.
func Values() []int {
	return append([]int(nil), values[:]...)
}

func Element(values []int, index int) (int, error) {
	if index < 0 || index >= len(values) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", apperror.ErrIndexOutOfRange, index, len(values))
	}

	return values[index], nil
}
