package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/maze-runner/config"
	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/tui"
	"github.com/urfave/cli/v2"
)

func globalFlags(c config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "rows",
			Aliases: []string{"r"},
			Usage:   "Number of maze rows",
			Value:   c.Rows,
		},
		&cli.IntFlag{
			Name:    "cols",
			Aliases: []string{"c"},
			Usage:   "Number of maze columns",
			Value:   c.Cols,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for maze carving, 0 picks one from the clock",
			Value: c.Seed,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Minimum log level (debug, info, warn, error)",
			Value: c.LogLevel,
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Append logs to this file",
			Value: c.LogFile,
		},
	}
}

// playCommand returns the interactive play command.
func playCommand() *cli.Command {
	return &cli.Command{
		Name:   "play",
		Usage:  "Play a maze in the terminal",
		Action: play,
	}
}

// carveCommand returns the non-interactive carve command.
func carveCommand() *cli.Command {
	return &cli.Command{
		Name:  "carve",
		Usage: "Carve a maze from a start cell and print it",
		Description: `Carves a maze from the given start, then prints it with the start (S) and the
furthest cell (T) marked.

Example:
  maze-runner --rows 10 --cols 10 --seed 7 carve --start-row 0 --start-col 0`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "start-row",
				Usage: "Row of the start cell",
			},
			&cli.IntFlag{
				Name:  "start-col",
				Usage: "Column of the start cell",
			},
		},
		Action: carve,
	}
}

// applyFlags overrides the loaded configuration with command line values.
func applyFlags(ctx *cli.Context) error {
	envs.Rows = ctx.Int("rows")
	envs.Cols = ctx.Int("cols")
	envs.Seed = ctx.Int64("seed")
	envs.LogLevel = ctx.String("log-level")
	envs.LogFile = ctx.String("log-file")
	return envs.Validate()
}

// initSession creates the session with its own logger and a seeded source.
func initSession() (*game.Session, error) {
	sessionLogger, err := newLogger("SESSION", config.ColorCyan)
	if err != nil {
		return nil, err
	}

	seed := envs.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(&game.Config{
		Rows:   envs.Rows,
		Cols:   envs.Cols,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: sessionLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	appLogger.Info(fmt.Sprintf("Session %s initialized: %dx%d grid, seed %d", session.ID(), envs.Rows, envs.Cols, seed))
	return session, nil
}

func play(ctx *cli.Context) error {
	if err := applyFlags(ctx); err != nil {
		return err
	}
	// The terminal belongs to the interface, so logs only go to a file.
	if err := initLogging(io.Discard); err != nil {
		return err
	}
	defer closeLogging()

	session, err := initSession()
	if err != nil {
		return err
	}

	tuiLogger, err := newLogger("TUI", config.ColorMagenta)
	if err != nil {
		return err
	}

	return tui.Run(ctx.Context, tui.New(session, tuiLogger))
}

func carve(ctx *cli.Context) error {
	if err := applyFlags(ctx); err != nil {
		return err
	}
	if err := initLogging(os.Stderr); err != nil {
		return err
	}
	defer closeLogging()

	session, err := initSession()
	if err != nil {
		return err
	}

	row, col := ctx.Int("start-row"), ctx.Int("start-col")
	if !session.Handle(game.ClickAtCell{Row: row, Col: col}) {
		return fmt.Errorf("start (%d,%d) is outside the %dx%d grid", row, col, envs.Rows, envs.Cols)
	}

	v := session.View()
	target, _ := v.Target()
	fmt.Fprint(ctx.App.Writer, v.String())
	fmt.Fprintf(ctx.App.Writer, "target %s at distance %d\n", target, v.TargetDistance)
	return nil
}
