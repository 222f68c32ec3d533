package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// main - is the entry point of the game. It initializes the configuration, logger, and plays one game on the terminal.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog, err := app.NewLogger(conf)
	if err != nil {
		panic(fmt.Errorf("logger init failed: %w", err))
	}
	defer closeLog() //nolint: errcheck // nothing left to report to

	if err = app.RunGame(context.Background(), logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("game run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}
