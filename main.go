package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/streak-tournament/internal"
	"github.com/rocketscienceinc/streak-tournament/internal/config"
)

// main - is the entry point of the application. It loads the configuration, applies the
// positional arguments, initializes the logger and runs the tournament.
//
// Usage: streak-tournament [rounds] [board size] [win streak] [console|void] [player1 type] [player2 type]
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "./config.yml")
	}

	conf := config.MustLoad(path)
	if err := conf.ApplyArgs(os.Args[1:]); err != nil {
		panic(fmt.Errorf("invalid arguments: %w", err))
	}

	return conf
}

// initialize logger. Stdout belongs to the board and the report.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
