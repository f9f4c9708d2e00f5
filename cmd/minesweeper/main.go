package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/logging"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/tui"
)

var (
	presetsPath string
	difficulty  string
	seed        uint64
)

func init() {
	const presetsUsage = "difficulty presets YAML file"
	flag.StringVar(&presetsPath, "presets", config.PresetsFile(), presetsUsage)
	flag.StringVar(&presetsPath, "p", config.PresetsFile(), presetsUsage+" (shorthand)")
	flag.StringVar(&difficulty, "difficulty", "", "start straight into this difficulty")
	flag.Uint64Var(&seed, "seed", 0, "mine placement seed (0 picks one at random)")
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()

	log, err := logging.NewFile(logging.FileOptions{
		Path:        config.LogFile(),
		Development: config.Development(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to open log file:", err)
		os.Exit(1)
	}
	logger := logging.FromLogrus(log)
	mines.Log = logger

	presets, err := config.LoadPresets(presetsPath)
	if err != nil {
		log.WithError(err).Error("unable to load presets")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	session := mines.NewSession(presets, createRand(seed))
	if difficulty != "" {
		if err := session.SelectDifficulty(difficulty); err != nil {
			log.WithError(err).Error("unable to start game")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("presets", presets.Names()).Info("starting up")

	program := tea.NewProgram(
		tui.New(session, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		program.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("exit", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info("bye")
}
