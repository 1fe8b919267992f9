package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Handler kinds understood by the configurator.
const (
	KindStream = "StreamHandler"
	KindFile   = "FileHandler"
)

// Handler is a log destination with its own threshold and formatter.
// Stream handlers write to the process stdout; file handlers append to a
// file whose handle is released when the handler is removed.
type Handler struct {
	id    uuid.UUID
	kind  string
	level zap.AtomicLevel

	mu        sync.Mutex
	formatter *Formatter
	ws        zapcore.WriteSyncer
	closer    io.Closer
	closed    bool
}

func newHandler(kind string, ws zapcore.WriteSyncer, closer io.Closer) *Handler {
	return &Handler{
		id:     uuid.New(),
		kind:   kind,
		level:  zap.NewAtomicLevelAt(zapcore.DebugLevel),
		ws:     ws,
		closer: closer,
	}
}

// NewStreamHandler creates a handler writing to the process stdout.
func NewStreamHandler() *Handler {
	return newHandler(KindStream, zapcore.AddSync(os.Stdout), nil)
}

// NewStreamHandlerTo creates a stream handler writing to w. Used in tests.
func NewStreamHandlerTo(w io.Writer) *Handler {
	return newHandler(KindStream, zapcore.AddSync(w), nil)
}

// NewFileHandler creates a handler appending to the file at path,
// creating it if needed. The handle stays open until the handler is
// removed from its logger or the process exits.
func NewFileHandler(path string) (*Handler, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return newHandler(KindFile, zapcore.AddSync(file), file), nil
}

// ID returns the handler's unique identity.
func (h *Handler) ID() uuid.UUID {
	return h.id
}

// Kind returns the handler kind, KindStream or KindFile.
func (h *Handler) Kind() string {
	return h.kind
}

// SetLevel sets the handler's own threshold. The default passes every
// record through to the destination.
func (h *Handler) SetLevel(l Level) {
	h.level.SetLevel(l.zapLevel())
}

// Level returns the handler's current threshold.
func (h *Handler) Level() Level {
	return levelFromZap(h.level.Level())
}

// SetFormatter attaches a pattern formatter. Takes effect when the handler
// is attached to a logger.
func (h *Handler) SetFormatter(f *Formatter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.formatter = f
}

// Pattern returns the handler's format pattern.
func (h *Handler) Pattern() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.formatter == nil {
		return DefaultPattern
	}
	return h.formatter.Pattern()
}

// Close releases the handler's destination. Stream handlers never close
// the process stdout.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.closer == nil {
		return nil
	}
	h.closed = true
	return h.closer.Close()
}

// Sync flushes buffered records to the destination.
func (h *Handler) Sync() error {
	return h.ws.Sync()
}

// core builds the facility core for this handler as attached to a logger
// with the given threshold. A record passes only if both the logger and
// the handler enable its level.
func (h *Handler) core(loggerLevel zap.AtomicLevel) zapcore.Core {
	h.mu.Lock()
	f := h.formatter
	h.mu.Unlock()
	if f == nil {
		f = defaultFormatter
	}

	enab := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return loggerLevel.Enabled(l) && h.level.Enabled(l)
	})
	return zapcore.NewCore(newPatternEncoder(f), h.ws, enab)
}
