package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	errTokenCount = fmt.Errorf("%w: expected exactly two numbers", apperror.ErrMalformedInput)
	errNotANumber = fmt.Errorf("%w: expected non-negative integers", apperror.ErrMalformedInput)
)

// MoveReader - prompts the active player and reads moves line by line.
type MoveReader struct {
	logger *slog.Logger
	in     *bufio.Reader
	out    io.Writer
}

func NewMoveReader(logger *slog.Logger, in io.Reader, out io.Writer) *MoveReader {
	return &MoveReader{
		logger: logger.With("component", "input"),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// ReadMove - blocks until the player enters an in-range, empty cell. Bad input is reported and re-prompted,
// only a closed or failing input stream is returned as an error.
func (that *MoveReader) ReadMove(board entity.Board, player entity.Player) (int, int, error) {
	for {
		fmt.Fprintf(that.out, "Player %s, enter your move (row col): ", player)

		line, err := that.readLine()
		if err != nil {
			return 0, 0, err
		}

		row, col, err := ValidateMove(board, line)
		if err == nil {
			return row, col, nil
		}

		that.logger.Debug("move rejected", "player", player.String(), "error", err)
		fmt.Fprintln(that.out, rejectMessage(err))
	}
}

// readLine - returns the next line of any length; a final line without a newline still counts.
func (that *MoveReader) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF) && line != "":
		return line, nil
	case errors.Is(err, io.EOF):
		return "", apperror.ErrInputClosed
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
}

// ValidateMove - parses the line and checks that the cell is free.
func ValidateMove(board entity.Board, line string) (int, int, error) {
	row, col, err := ParseMove(line)
	if err != nil {
		return 0, 0, err
	}

	if board.Cell(row, col) != entity.EmptyCell {
		return 0, 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return row, col, nil
}

// ParseMove - parses "row col" and checks both coordinates are on the board.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errTokenCount
	}

	coords := [2]int{}
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 {
			return 0, 0, errNotANumber
		}
		coords[i] = value
	}

	row, col := coords[0], coords[1]
	if !entity.InBounds(row, col) {
		return 0, 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return row, col, nil
}

func rejectMessage(err error) string {
	switch {
	case errors.Is(err, errTokenCount):
		return "Invalid input. Please enter exactly two numbers (row and column)."
	case errors.Is(err, apperror.ErrMalformedInput):
		return "Invalid input. Please enter two numbers separated by a space."
	case errors.Is(err, apperror.ErrOutOfRange):
		return "Invalid input. Row and column must be between 0 and 2."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "This cell is already taken! Try again."
	default:
		return "Invalid input. Try again."
	}
}
