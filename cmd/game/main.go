package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	var opts loop.Options
	if seed := config.GetEnvInt64("INVADERS_SEED", 0); seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	var (
		result loop.Result
		err    error
	)
	switch renderer := config.GetEnv("INVADERS_RENDERER", "ansi"); renderer {
	case "ansi":
		result, err = runANSI(opts)
	case "tcell":
		result, err = runTcell(opts)
	default:
		logger.Fatal("unknown renderer", "renderer", renderer)
	}
	if err != nil {
		logger.Fatal("game error", "err", err)
	}

	logger.Info("session ended", "score", result.Score, "level", result.Level, "quit", result.Quit)
}

// runANSI plays on the raw escape-sequence backend: raw-mode stdin, ANSI
// rendering to stdout.
func runANSI(opts loop.Options) (loop.Result, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return loop.Result{}, fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	width, height, err := draw.DefaultTermSizeFunc()
	if err != nil {
		return loop.Result{}, fmt.Errorf("terminal size: %w", err)
	}

	draw.HideCursor(os.Stdout)
	defer draw.ShowCursor(os.Stdout)
	defer draw.ClearScreen(os.Stdout)

	terminal := draw.NewTerminal(os.Stdout, width, height)
	stream := input.StartStream(bufio.NewReader(os.Stdin))
	return loop.Run(terminal, stream, opts)
}

// runTcell plays on the tcell backend, which manages raw mode and cursor
// state itself.
func runTcell(opts loop.Options) (loop.Result, error) {
	screen, err := draw.NewTcellScreen()
	if err != nil {
		return loop.Result{}, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return loop.Run(screen, screen, opts)
}
