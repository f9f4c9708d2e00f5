// Command replay runs a script of game events against a fresh session and
// prints the final board.
//
//	replay -seed 7 moves.txt
//	echo -e "n Easy\no 4 4" | replay
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/events"
	"github.com/vancomm/sweeper/internal/logging"
	"github.com/vancomm/sweeper/internal/mines"
)

func main() {
	presetsPath := flag.String("presets", config.PresetsFile(), "difficulty presets YAML file")
	seed := flag.Uint64("seed", 1, "mine placement seed")
	flag.Parse()

	logger := logging.NewConsole(os.Stderr, config.Development())
	mines.Log = logger

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger, *presetsPath, *seed, flag.Args(), os.Stdout); err != nil {
		logger.Error("replay failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(
	ctx context.Context, logger *slog.Logger,
	presetsPath string, seed uint64, args []string, out io.Writer,
) error {
	presets, err := config.LoadPresets(presetsPath)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("unable to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	session := mines.NewSession(presets, rand.New(rand.NewPCG(seed, seed)))
	x := events.NewExecutor(logger, session)
	if err := x.Run(ctx, in); err != nil {
		return err
	}

	if board := session.Board(); board != nil {
		fmt.Fprint(out, board.String())
		fmt.Fprintf(out, "difficulty: %s  flags: %d/%d\n",
			session.Difficulty(), board.FlagCount(), board.MineCount())
	}
	fmt.Fprintf(out, "state: %s\n", session.State())
	return nil
}
