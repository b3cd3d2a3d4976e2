package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "neon-strike.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10 MiB
)

// setupLogging routes zerolog to a file under dir when debug is set, otherwise discards it
// The terminal belongs to the game, so logs never go to stdout or stderr
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("neon-strike-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	log.Info().Int("pid", os.Getpid()).Msg("logging started")
	return f
}
