package tictactoe

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const clearScreen = "\x1B[2J\x1B[1;1H"

type moveReader interface {
	ReadMove(board entity.Board, player entity.Player) (int, int, error)
}

type Option func(*Game)

// WithFirstPlayer - sets the player that moves first.
func WithFirstPlayer(player entity.Player) Option {
	return func(g *Game) {
		g.active = player
	}
}

// WithClearScreen - toggles the escape sequence written before each render.
func WithClearScreen(enabled bool) Option {
	return func(g *Game) {
		g.clearScreen = enabled
	}
}

// Game - runs one match on a single board until a win or a draw.
type Game struct {
	logger *slog.Logger
	reader moveReader
	out    io.Writer

	board       entity.Board
	active      entity.Player
	moves       []entity.Move
	clearScreen bool
}

func NewGame(logger *slog.Logger, reader moveReader, out io.Writer, opts ...Option) *Game {
	game := &Game{
		logger:      logger.With("component", "game"),
		reader:      reader,
		out:         out,
		active:      entity.PlayerX,
		clearScreen: true,
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// Run - plays turns until the evaluator reports a win or a draw.
func (that *Game) Run(ctx context.Context) (entity.GameState, error) {
	if that.IsFinished() {
		return Evaluate(that.board), apperror.ErrGameFinished
	}

	that.printf("Welcome to Tic-Tac-Toe!\n")

	for {
		if err := ctx.Err(); err != nil {
			return entity.InProgress(), fmt.Errorf("game interrupted: %w", err)
		}

		that.clear()
		that.printf("Player %s's turn.\n", that.active)
		that.printf("%s", that.board.Render())

		state, err := that.Turn()
		if err != nil {
			return state, err
		}

		if state.IsFinished() {
			that.finish(state)
			return state, nil
		}
	}
}

// Turn - reads one validated move for the active player, applies it and evaluates the board.
func (that *Game) Turn() (entity.GameState, error) {
	if that.IsFinished() {
		return Evaluate(that.board), apperror.ErrGameFinished
	}

	player := that.active

	row, col, err := that.reader.ReadMove(that.board, player)
	if err != nil {
		return entity.InProgress(), fmt.Errorf("failed to read move: %w", err)
	}

	if err = that.board.Place(row, col, player); err != nil {
		return entity.InProgress(), fmt.Errorf("failed to place mark: %w", err)
	}

	that.moves = append(that.moves, entity.Move{Player: player, Row: row, Col: col})
	that.logger.Debug("move applied", "player", player.String(), "row", row, "col", col)

	state := Evaluate(that.board)
	if !state.IsFinished() {
		that.active = player.Next()
	}

	return state, nil
}

func (that *Game) finish(state entity.GameState) {
	that.clear()

	switch state.Status {
	case entity.StatusWin:
		that.printf("Congratulations, Player %s wins!\n", state.Winner)
		that.logger.Info("game finished", "result", state.Status.String(), "winner", state.Winner.String(), "moves", len(that.moves))
	case entity.StatusDraw:
		that.printf("The game is a draw!\n")
		that.logger.Info("game finished", "result", state.Status.String(), "moves", len(that.moves))
	}

	that.printf("%s", that.board.Render())
}

func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) Active() entity.Player {
	return that.active
}

// Moves - returns a copy of the move history.
func (that *Game) Moves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)
	return moves
}

func (that *Game) IsFinished() bool {
	return Evaluate(that.board).IsFinished()
}

func (that *Game) clear() {
	if that.clearScreen {
		that.printf(clearScreen)
	}
}

func (that *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
