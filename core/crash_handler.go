package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

var crashScreen atomic.Pointer[tcell.Screen]

// RegisterCrashScreen sets the screen restored by HandleCrash
func RegisterCrashScreen(s tcell.Screen) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	stack := debug.Stack()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	// Restore terminal before printing so the trace is readable
	if s := crashScreen.Load(); s != nil {
		(*s).Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	os.Exit(1)
}

// Guard wraps a goroutine body with panic recovery for use with errgroup.Go
// Use it for every goroutine that runs while the screen is active
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
