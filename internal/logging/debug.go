package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	enabled bool
	session string
)

// DebugEnabled reports whether debug output is on.
// It is off until SetDebug is called with the loaded configuration.
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetDebug turns debug output on or off
func SetDebug(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// SetOutput redirects debug output. Debug lines never go to stdout,
// which carries the command transcript.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// StartSession assigns a fresh session id used to prefix debug lines and returns it
func StartSession() string {
	id := uuid.Must(uuid.NewV7()).String()
	mu.Lock()
	session = id
	mu.Unlock()
	return id
}

// Session returns the current session id, or "" before StartSession
func Session() string {
	mu.Lock()
	defer mu.Unlock()
	return session
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, prefix()+format, args...)
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprint(out, prefix())
	fmt.Fprintln(out, args...)
}

func prefix() string {
	if session == "" {
		return "[debug] "
	}
	return "[debug " + session + "] "
}
