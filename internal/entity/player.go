package entity

import "fmt"

type Player uint8

const (
	PlayerX Player = iota
	PlayerO
)

// ParsePlayer - converts a mark name from configuration into a Player.
func ParsePlayer(name string) (Player, error) {
	switch name {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	default:
		return PlayerX, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
}

// Mark - returns the cell value this player places on the board.
func (that Player) Mark() Cell {
	if that == PlayerO {
		return CellO
	}
	return CellX
}

// Next - returns the opponent, it's simple logic for a game changing move.
func (that Player) Next() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	if that == PlayerO {
		return "O"
	}
	return "X"
}

// Move is a single placed mark.
type Move struct {
	Player Player
	Row    int
	Col    int
}
