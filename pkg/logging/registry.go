// Package logging adapts go.uber.org/zap into the named-logger,
// pluggable-handler facility the configurator drives: a process-wide
// registry of loggers keyed by dotted name, each holding a severity
// threshold and an ordered set of handlers.
package logging

import (
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Registry is a process-wide table of loggers keyed by name. Safe for
// concurrent use; loggers keep working while they are reconfigured.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry. Most callers want DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetOrCreate returns the logger registered under name, creating it with
// no handlers and an INFO threshold on first use.
func (r *Registry) GetOrCreate(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lg, ok := r.loggers[name]; ok {
		return lg
	}
	lg := &Logger{
		name:  name,
		level: zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
	lg.rebuild()
	r.loggers[name] = lg
	return lg
}

// Names returns the registered logger names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Logger is a named sink-selection unit: a severity threshold plus zero or
// more handlers. Reconfiguring a logger briefly leaves it with no handlers;
// records logged in that window are dropped.
type Logger struct {
	name  string
	level zap.AtomicLevel

	mu       sync.RWMutex
	handlers []*Handler
	zl       *zap.Logger
}

// Name returns the logger's registered name.
func (l *Logger) Name() string {
	return l.name
}

// SetLevel sets the logger's severity threshold.
func (l *Logger) SetLevel(v Level) {
	l.level.SetLevel(v.zapLevel())
}

// Level returns the logger's current threshold.
func (l *Logger) Level() Level {
	return levelFromZap(l.level.Level())
}

// AddHandler attaches a handler after any already attached.
func (l *Logger) AddHandler(h *Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
	l.rebuild()
}

// RemoveHandler detaches a handler and releases its destination. Unknown
// handlers are ignored.
func (l *Logger) RemoveHandler(h *Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cur := range l.handlers {
		if cur.ID() == h.ID() {
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			l.rebuild()
			cur.Close()
			return
		}
	}
}

// Handlers returns the attached handlers in attachment order.
func (l *Logger) Handlers() []*Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// Sync flushes every attached handler.
func (l *Logger) Sync() error {
	var firstErr error
	for _, h := range l.Handlers() {
		if err := h.Sync(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// rebuild recreates the underlying zap logger from the current handler
// set. Caller must hold l.mu.
func (l *Logger) rebuild() {
	cores := make([]zapcore.Core, 0, len(l.handlers))
	for _, h := range l.handlers {
		cores = append(cores, h.core(l.level))
	}
	l.zl = zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(), zap.AddCallerSkip(1)).Named(l.name)
}

func (l *Logger) current() *zap.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.zl
}

// Debug logs a debug-level message through the attached handlers.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.current().Debug(msg, fields...)
}

// Info logs an info-level message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.current().Info(msg, fields...)
}

// Warning logs a warning-level message.
func (l *Logger) Warning(msg string, fields ...zap.Field) {
	l.current().Warn(msg, fields...)
}

// Error logs an error-level message.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.current().Error(msg, fields...)
}

// Critical logs a critical-level message.
func (l *Logger) Critical(msg string, fields ...zap.Field) {
	l.current().Log(CriticalLevel.zapLevel(), msg, fields...)
}
