// Package diag provides the bootstrap diagnostic channel used while the real
// logging facility is still being configured. It writes plain lines to stdout
// and must never depend on the registry it is reporting about.
package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// Logger emits diagnostic lines in the fixed format
//
//	<timestamp> | <goroutine-id> | <source> | <LEVEL> | <message>
//
// with millisecond timestamp precision.
type Logger struct {
	mu   sync.Mutex
	out  io.Writer
	name string
}

// New creates a diagnostic logger writing to stdout.
func New(name string) *Logger {
	return &Logger{out: os.Stdout, name: name}
}

// NewWithOutput creates a diagnostic logger writing to w. Used in tests.
func NewWithOutput(name string, w io.Writer) *Logger {
	return &Logger{out: w, name: name}
}

// Infof logs an informational diagnostic line.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit("INFO", format, args...)
}

// Warnf logs a warning diagnostic line.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emit("WARNING", format, args...)
}

// Errorf logs an error diagnostic line.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit("ERROR", format, args...)
}

func (l *Logger) emit(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s | %d | %s | %s | %s\n", Timestamp(time.Now()), GoroutineID(), l.name, level, msg)
}

// Timestamp renders t with millisecond precision, comma-separated, e.g.
// "2026-08-31 10:04:05,123".
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%s,%03d", t.Format("2006-01-02 15:04:05"), t.Nanosecond()/1e6)
}

// GoroutineID returns the numeric id of the calling goroutine, parsed from
// the runtime stack header ("goroutine N [...]"). It stands in for the thread
// id field of the diagnostic format.
func GoroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i > 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseUint(string(buf), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
