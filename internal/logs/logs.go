// Package logs prints CLI output. Regular messages go to stdout, errors to
// stderr, and verbose messages only when enabled.
package logs

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	verbose = false
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
)

// ConfigureVerbosity configures how verbose log printing should be.
func ConfigureVerbosity(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput redirects both streams. Used by tests.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout, stderr = out, errOut
}

// Print logs a message to stdout, with optional format args.
func Print(message string, fmtArgs ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	write(stdout, message, fmtArgs)
}

// Printv logs a message to stdout, with optional format args, if verbosity is enabled.
func Printv(message string, fmtArgs ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		write(stdout, "[verbose] "+message, fmtArgs)
	}
}

// Error logs a message to stderr, with optional format args.
func Error(message string, fmtArgs ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	write(stderr, message, fmtArgs)
}

func write(w io.Writer, message string, fmtArgs []interface{}) {
	s := message + "\n"
	if len(fmtArgs) > 0 {
		s = fmt.Sprintf(s, fmtArgs...)
	}
	w.Write([]byte(s))
}
