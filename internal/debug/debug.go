// Package debug is opt-in diagnostic logging.
//
// Set LISTER_DEBUG to any non-empty value to enable it:
//
//	LISTER_DEBUG=1 lister tree
//
// Messages go to stderr with a timestamp. When disabled every function returns
// immediately.
package debug

import (
	"io"
	"log"
	"os"
	"sync"
	"time"
)

const prefix = "[lister] "

var (
	mu      sync.Mutex
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("LISTER_DEBUG") != "" {
		SetEnabled(true)
	}
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetEnabled turns logging on or off. The first enable creates a stderr
// logger unless SetOutput installed one.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// SetOutput redirects debug output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, prefix, 0)
}

func current() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return nil
	}
	return logger
}

// Log writes a printf-style message when enabled.
func Log(format string, args ...any) {
	if lg := current(); lg != nil {
		lg.Printf(format, args...)
	}
}

func LogTiming(name string, d time.Duration) {
	if lg := current(); lg != nil {
		lg.Printf("%s took %v", name, d)
	}
}

// LogEnterExit logs entry now and exit with the elapsed time when the
// returned func runs:
//
//	defer debug.LogEnterExit("store.SaveOutline")()
func LogEnterExit(name string) func() {
	lg := current()
	if lg == nil {
		return func() {}
	}
	lg.Printf("-> %s", name)
	start := time.Now()
	return func() {
		lg.Printf("<- %s (%v)", name, time.Since(start))
	}
}
