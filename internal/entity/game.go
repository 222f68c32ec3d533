package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 3

type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWin
	StatusDraw
)

var ErrUnknownPlayer = errors.New("unknown player")

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

// Owner - returns the player that placed this mark. ok is false for an empty cell.
func (that Cell) Owner() (Player, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return PlayerX, false
	}
}

func (that Status) String() string {
	switch that {
	case StatusWin:
		return "win"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// GameState is derived from a Board after every move and never stored.
type GameState struct {
	Status Status
	Winner Player
}

func InProgress() GameState { return GameState{Status: StatusInProgress} }

func Win(player Player) GameState { return GameState{Status: StatusWin, Winner: player} }

func Draw() GameState { return GameState{Status: StatusDraw} }

func (that GameState) IsFinished() bool {
	return that.Status != StatusInProgress
}

// Board - 3x3 grid indexed by [row][col].
type Board [BoardSize][BoardSize]Cell

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Place - marks an empty cell for the player.
func (that *Board) Place(row, col int, player Player) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if that[row][col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that[row][col] = player.Mark()

	return nil
}

func (that *Board) Cell(row, col int) Cell {
	return that[row][col]
}

func (that *Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

func (that *Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}
	return count
}

// Render - draws the board with row and column headers.
func (that *Board) Render() string {
	var sb strings.Builder

	sb.WriteString("\n   0   1   2\n")
	sb.WriteString("  -----------\n")
	for i, row := range that {
		fmt.Fprintf(&sb, "%d| %s | %s | %s |\n", i, row[0], row[1], row[2])
		sb.WriteString("  -----------\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
