package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetCategory(t *testing.T) {
	tests := []struct {
		code             string
		expectedCategory ErrorCategory
	}{
		{CodeNotFound, CategoryAbsorbed},
		{CodeKeyMissing, CategoryAbsorbed},
		{CodeParse, CategoryAbsorbed},
		{CodeInvalidArgument, CategoryFatal},
		{CodeInternal, CategoryFatal},
		{CodeOK, CategoryNone},
		{"BOGUS", CategoryNone},
	}
	for _, tt := range tests {
		if got := GetCategory(tt.code); got != tt.expectedCategory {
			t.Fatalf("GetCategory(%s) = %s, want %s", tt.code, got, tt.expectedCategory)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := Wrap(cause, CodeNotFound, "config file not found")

	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should match its cause")
	}
	if err.Code() != CodeNotFound {
		t.Fatalf("unexpected code: %s", err.Code())
	}
	if err.Error() != "config file not found: no such file" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestHandlerError(t *testing.T) {
	err := NewHandlerError("app", 2, "FileHandler", "filename is required", nil)

	if !IsConstruction(err) {
		t.Fatal("handler errors are construction errors")
	}
	if GetCode(err) != CodeInvalidArgument {
		t.Fatalf("unexpected code: %s", GetCode(err))
	}
	want := `logger "app" handlers[2] (FileHandler): filename is required`
	if err.Error() != want {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestLevelError(t *testing.T) {
	err := NewLevelError("VERBOSE")
	if !IsConstruction(err) {
		t.Fatal("level errors are construction errors")
	}
	if err.Error() != "unknown severity level VERBOSE" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestSentinelHelpers(t *testing.T) {
	if !IsNotFound(fmt.Errorf("walk: %w", ErrConfigNotFound)) {
		t.Fatal("IsNotFound should see through wrapping")
	}
	if !IsKeyMissing(ErrKeyMissing) {
		t.Fatal("IsKeyMissing(ErrKeyMissing) = false")
	}
	if IsNotFound(nil) || IsKeyMissing(nil) || IsConstruction(nil) {
		t.Fatal("nil is never an error")
	}
	if GetCode(nil) != CodeOK {
		t.Fatalf("GetCode(nil) = %s", GetCode(nil))
	}
	if GetCode(fmt.Errorf("plain")) != CodeInternal {
		t.Fatalf("uncoded errors default to internal, got %s", GetCode(fmt.Errorf("plain")))
	}
}
