package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/maze-runner/config"
	"github.com/beka-birhanu/maze-runner/logger"
	"github.com/urfave/cli/v2"
)

// Global variables for dependencies
var (
	envs      config.Config
	logOutput io.Writer = io.Discard
	appLogger *logger.Logger
)

// initLogging opens the log destination and creates the application logger.
// Without a log file the lines go to fallback.
func initLogging(fallback io.Writer) error {
	logOutput = fallback
	if envs.LogFile != "" {
		f, err := os.OpenFile(envs.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logOutput = f
	}

	var err error
	appLogger, err = newLogger("APP", config.ColorGreen)
	if err != nil {
		return err
	}
	if envs.DotEnv {
		appLogger.Debug(".env file loaded")
	}
	return nil
}

// newLogger returns a logger writing to the shared log destination at the
// configured level.
func newLogger(prefix, color string) (*logger.Logger, error) {
	l, err := logger.New(prefix, color, logOutput)
	if err != nil {
		return nil, fmt.Errorf("creating %s logger: %w", prefix, err)
	}
	if err := l.SetLevel(envs.LogLevel); err != nil {
		return nil, err
	}
	return l, nil
}

func closeLogging() {
	if c, ok := logOutput.(io.Closer); ok && logOutput != os.Stderr {
		_ = c.Close()
	}
}

func main() {
	var err error
	envs, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newApp(envs).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command line application with defaults taken from c.
func newApp(c config.Config) *cli.App {
	return &cli.App{
		Name:  "maze-runner",
		Usage: "Carve a perfect maze and walk it in the terminal",
		Description: `Pick a start cell with the mouse (or the arrow keys and enter), and a maze is
carved from it by randomized depth-first search. The cell furthest from the
start is marked as the target. Press any key to begin and move with the arrow
keys or WASD.

Defaults come from the environment (MAZE_ROWS, MAZE_COLS, MAZE_SEED, LOG_LEVEL,
LOG_FILE) or a .env file.`,
		Flags:  globalFlags(c),
		Action: play,
		Commands: []*cli.Command{
			playCommand(),
			carveCommand(),
		},
	}
}
