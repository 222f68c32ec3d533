package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

type cell struct {
	row, col int
}

// WinCombos - rows, then columns, then diagonals.
var WinCombos = [][3]cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate - classifies the board as a win, a draw or a game in progress. It never mutates the board.
func Evaluate(board entity.Board) entity.GameState {
	for _, combo := range WinCombos {
		a := board[combo[0].row][combo[0].col]
		b := board[combo[1].row][combo[1].col]
		c := board[combo[2].row][combo[2].col]
		if a != entity.EmptyCell && a == b && b == c {
			winner, _ := a.Owner()
			return entity.Win(winner)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.InProgress()
	}

	return entity.Draw()
}
