package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetOrCreateReturnsSameLogger(t *testing.T) {
	r := NewRegistry()
	a := r.GetOrCreate("app.db")
	b := r.GetOrCreate("app.db")
	if a != b {
		t.Fatal("GetOrCreate must return the registered instance")
	}
	if a.Name() != "app.db" {
		t.Fatalf("unexpected name: %q", a.Name())
	}
	if got := r.Names(); len(got) != 1 || got[0] != "app.db" {
		t.Fatalf("unexpected names: %v", got)
	}
}

func TestLoggerDefaults(t *testing.T) {
	lg := NewRegistry().GetOrCreate("fresh")
	if lg.Level() != InfoLevel {
		t.Fatalf("fresh logger level = %s, want INFO", lg.Level())
	}
	if len(lg.Handlers()) != 0 {
		t.Fatal("fresh logger must have no handlers")
	}
	// logging without handlers must not panic
	lg.Info("dropped")
}

func TestLoggerThreshold(t *testing.T) {
	var buf bytes.Buffer
	lg := NewRegistry().GetOrCreate("thresh")
	lg.SetLevel(WarningLevel)
	lg.AddHandler(NewStreamHandlerTo(&buf))

	lg.Debug("no")
	lg.Info("no")
	lg.Warning("yes-warning")
	lg.Error("yes-error")
	lg.Critical("yes-critical")

	out := buf.String()
	if strings.Contains(out, "no") {
		t.Fatalf("records below threshold leaked: %q", out)
	}
	for _, want := range []string{"yes-warning\n", "yes-error\n", "yes-critical\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestHandlerThreshold(t *testing.T) {
	var buf bytes.Buffer
	lg := NewRegistry().GetOrCreate("hthresh")
	lg.SetLevel(DebugLevel)

	h := NewStreamHandlerTo(&buf)
	h.SetLevel(ErrorLevel)
	lg.AddHandler(h)

	lg.Info("no")
	lg.Error("yes")
	if got := buf.String(); got != "yes\n" {
		t.Fatalf("handler threshold not applied: %q", got)
	}
}

func TestAddRemoveHandlerOrder(t *testing.T) {
	lg := NewRegistry().GetOrCreate("order")
	a := NewStreamHandlerTo(&bytes.Buffer{})
	b := NewStreamHandlerTo(&bytes.Buffer{})
	c := NewStreamHandlerTo(&bytes.Buffer{})
	lg.AddHandler(a)
	lg.AddHandler(b)
	lg.AddHandler(c)

	lg.RemoveHandler(b)
	got := lg.Handlers()
	if len(got) != 2 || got[0].ID() != a.ID() || got[1].ID() != c.ID() {
		t.Fatalf("unexpected handler set after removal: %v", got)
	}

	// removing an unknown handler is a no-op
	lg.RemoveHandler(b)
	if len(lg.Handlers()) != 2 {
		t.Fatal("removing an unknown handler changed the set")
	}
}

func TestFileHandlerWritesAndReleases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	lg := NewRegistry().GetOrCreate("file")

	h, err := NewFileHandler(path)
	if err != nil {
		t.Fatal(err)
	}
	lg.AddHandler(h)
	lg.Info("first")
	lg.RemoveHandler(h) // closes the file

	// a fresh handler on the same path appends instead of truncating
	h2, err := NewFileHandler(path)
	if err != nil {
		t.Fatal(err)
	}
	lg.AddHandler(h2)
	lg.Info("second")
	lg.RemoveHandler(h2)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Fatalf("unexpected file content: %q", data)
	}
}

func TestFileHandlerOpenError(t *testing.T) {
	if _, err := NewFileHandler(filepath.Join(t.TempDir(), "missing", "app.log")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestHandlerCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := NewFileHandler(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second close must be a no-op: %v", err)
	}
}

func TestHandlerKindsAndPattern(t *testing.T) {
	h := NewStreamHandler()
	if h.Kind() != KindStream {
		t.Fatalf("unexpected kind: %q", h.Kind())
	}
	if h.Pattern() != DefaultPattern {
		t.Fatalf("unexpected default pattern: %q", h.Pattern())
	}
	f, err := NewFormatter("%(levelname)s %(message)s")
	if err != nil {
		t.Fatal(err)
	}
	h.SetFormatter(f)
	if h.Pattern() != "%(levelname)s %(message)s" {
		t.Fatalf("unexpected pattern: %q", h.Pattern())
	}
	if h.ID() == (NewStreamHandler()).ID() {
		t.Fatal("handler ids must be unique")
	}
}
