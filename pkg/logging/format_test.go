package logging

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encode(t *testing.T, pattern string, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	f, err := NewFormatter(pattern)
	if err != nil {
		t.Fatalf("NewFormatter(%q): %v", pattern, err)
	}
	buf, err := newPatternEncoder(f).EncodeEntry(ent, fields)
	if err != nil {
		t.Fatalf("EncodeEntry: %v", err)
	}
	defer buf.Free()
	return buf.String()
}

func TestPatternRendering(t *testing.T) {
	ent := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 8, 31, 9, 4, 5, 123_000_000, time.UTC),
		LoggerName: "app",
		Message:    "hello",
	}

	tests := []struct {
		pattern string
		want    string
	}{
		{"%(message)s", "hello\n"},
		{"%(levelname)s:%(name)s:%(message)s", "INFO:app:hello\n"},
		{"%(asctime)s | %(name)s | %(levelname)s | %(message)s",
			"2026-08-31 09:04:05,123 | app | INFO | hello\n"},
		{"%(levelno)d", "1\n"},
		{"100%% %(message)s", "100% hello\n"},
		{"plain text", "plain text\n"},
	}
	for _, tt := range tests {
		if got := encode(t, tt.pattern, ent); got != tt.want {
			t.Fatalf("pattern %q: got %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestPatternThread(t *testing.T) {
	ent := zapcore.Entry{Level: zapcore.DebugLevel, Message: "x"}
	got := encode(t, "%(thread)d", ent)
	if got == "0\n" || got == "\n" {
		t.Fatalf("expected a goroutine id, got %q", got)
	}
}

func TestPatternCallerFields(t *testing.T) {
	ent := zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Message: "x",
		Caller:  zapcore.NewEntryCaller(0, "/src/pkg/app/server.go", 42, true),
	}
	got := encode(t, "%(filename)s:%(lineno)d", ent)
	if got != "server.go:42\n" {
		t.Fatalf("unexpected caller rendering: %q", got)
	}
}

func TestPatternStructuredFields(t *testing.T) {
	ent := zapcore.Entry{Level: zapcore.InfoLevel, Message: "m"}
	got := encode(t, "%(message)s", ent, zap.String("peer", "a"), zap.Int("n", 3))
	if got != "m n=3 peer=a\n" {
		t.Fatalf("unexpected field rendering: %q", got)
	}
}

func TestPatternWidthFlags(t *testing.T) {
	ent := zapcore.Entry{Level: zapcore.ErrorLevel, Message: "m"}
	if got := encode(t, "%(levelname)-8s|", ent); got != "ERROR   |\n" {
		t.Fatalf("unexpected width rendering: %q", got)
	}
}

func TestFormatterErrors(t *testing.T) {
	for _, pattern := range []string{
		"%(bogus)s",
		"%(message",
		"%(message)",
	} {
		if _, err := NewFormatter(pattern); err == nil {
			t.Fatalf("NewFormatter(%q): expected error", pattern)
		}
	}
}

func TestFormatterPattern(t *testing.T) {
	f, err := NewFormatter("%(message)s")
	if err != nil {
		t.Fatal(err)
	}
	if f.Pattern() != "%(message)s" {
		t.Fatalf("Pattern() = %q", f.Pattern())
	}
}

func TestEncoderClone(t *testing.T) {
	enc := newPatternEncoder(defaultFormatter)
	enc.AddString("base", "v")
	clone := enc.Clone()
	clone.AddString("extra", "w")

	buf, err := enc.EncodeEntry(zapcore.Entry{Message: "m"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Free()
	if strings.Contains(buf.String(), "extra") {
		t.Fatalf("clone leaked fields into original: %q", buf.String())
	}
}
