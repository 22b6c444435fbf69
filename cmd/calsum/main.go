package main

import (
	"os"
	"runtime/debug"

	"github.com/vvka-141/calsum/internal/cli"
	"github.com/vvka-141/calsum/internal/logging"
	"github.com/vvka-141/calsum/pkg/calsum"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			logging.NewConsoleLogger(false).Error("panic: %v\n%s", r, debug.Stack())
			os.Exit(calsum.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(calsum.ExitCodeForError(err))
	}
}
