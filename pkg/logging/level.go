package logging

import (
	"go.uber.org/zap/zapcore"

	"github.com/my-go-utils/nogging/pkg/errors"
)

// Level is the severity threshold carried by loggers and handlers,
// ordered DEBUG < INFO < WARNING < ERROR < CRITICAL.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
)

var levelNames = map[Level]string{
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarningLevel:  "WARNING",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
}

// String returns the symbolic severity name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel maps a symbolic severity name through the closed name table.
// Names are matched exactly; unknown names are construction errors.
func ParseLevel(name string) (Level, error) {
	for lvl, n := range levelNames {
		if n == name {
			return lvl, nil
		}
	}
	return DebugLevel, errors.NewLevelError(name)
}

// LevelFromInt validates a numeric severity from a config document.
func LevelFromInt(n int) (Level, error) {
	lvl := Level(n)
	if _, ok := levelNames[lvl]; !ok {
		return DebugLevel, errors.NewLevelError(n)
	}
	return lvl, nil
}

// zapLevel maps a severity onto the underlying facility's level scale.
// CRITICAL maps to DPanic, which zap logs without terminating outside
// development mode.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

func levelFromZap(zl zapcore.Level) Level {
	switch zl {
	case zapcore.DebugLevel:
		return DebugLevel
	case zapcore.InfoLevel:
		return InfoLevel
	case zapcore.WarnLevel:
		return WarningLevel
	case zapcore.ErrorLevel:
		return ErrorLevel
	default:
		return CriticalLevel
	}
}
