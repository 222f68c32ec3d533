package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/lookup"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// NewLogger - JSON logger writing to the configured log file, or stderr so it never mixes with the board.
func NewLogger(conf *config.Config) (*slog.Logger, func() error, error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closeFn = file, file.Close
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}

// RunGame - plays one console game between two players sharing the terminal.
func RunGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	firstPlayer, err := entity.ParsePlayer(conf.Game.FirstPlayer)
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	reader := console.NewMoveReader(logger, in, out)
	game := tictactoe.NewGame(logger, reader, out,
		tictactoe.WithFirstPlayer(firstPlayer),
		tictactoe.WithClearScreen(!conf.Game.NoClear),
	)

	log.Debug("starting game", "first_player", firstPlayer.String())

	if _, err = game.Run(ctx); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	return nil
}

// RunTodo - opens the configured task storage and runs one CLI command against it.
func RunTodo(ctx context.Context, logger *slog.Logger, conf *config.Config, args []string, stdout, stderr io.Writer) error {
	log := logger.With("component", "app")

	taskRepo, closeFn, err := newTaskRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeFn(); err != nil {
			log.Error("could not close task storage", "error", err)
		}
	}()

	taskUseCase := usecase.NewTaskUseCase(logger, taskRepo)

	return NewTodoApp(taskUseCase, stdout, stderr).RunContext(ctx, args)
}

func newTaskRepository(ctx context.Context, conf *config.Config) (repository.TaskRepository, func() error, error) {
	switch conf.Todo.Storage {
	case config.StorageFile, "":
		return repository.NewFileTaskRepository(conf.Todo.FilePath), func() error { return nil }, nil

	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisTaskRepository(redisStorage.Connection, conf.Todo.RedisKey), redisStorage.Close, nil

	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Todo.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteTaskRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStorage, conf.Todo.Storage)
	}
}

// RunLookup - reads an index and prints the matching element of the fixed array.
func RunLookup(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "enter index")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return fmt.Errorf("failed to read index: %w", err)
	}

	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("%w: %q", apperror.ErrMalformedInput, strings.TrimSpace(line))
	}

	element, err := lookup.Element(lookup.Values(), index)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "the element at %d index is %d\n", index, element)

	return nil
}
