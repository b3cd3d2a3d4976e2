package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/neon-strike/core"
	"github.com/lixenwraith/neon-strike/game"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/neon-strike.log")
	dataFlag  = flag.String("data", defaultDataPath(), "Score store file (empty keeps scores in memory)")
	muteFlag  = flag.Bool("mute", false, "Start with audio muted")
	seedFlag  = flag.Uint64("seed", 0, "Simulation seed, 0 derives one from the clock")
)

func defaultDataPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "neon-strike-scores.yaml"
	}
	return filepath.Join(dir, "neon-strike", "scores.yaml")
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag, logDir)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "neon-strike: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	core.RegisterCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	g, err := game.New(screen, game.Config{
		Seed:     seed,
		DataPath: *dataFlag,
		Muted:    *muteFlag,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Uint64("seed", seed).Msg("neon-strike starting")
	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Info().Msg("neon-strike exited")
	return nil
}
