package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorToCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, CodeOK},
		{"invalid input", NewInvalidReading(2, -300, -273), CodeInvalidInput},
		{"invalid number", Wrap(ErrInvalidNumber, "line 3"), CodeInvalidInput},
		{"untrackable", fmt.Errorf("add NaN: %w", ErrUntrackableValue), CodeInvalidInput},
		{"empty", fmt.Errorf("summary: %w", ErrEmptySeries), CodeEmptySeries},
		{"config", NewValidation("report.precision", "too high"), CodeInvalidConfig},
		{"missing", NewMissingField("shell.prompt"), CodeInvalidConfig},
		{"quantile", ErrInvalidQuantile, CodeInvalidQuery},
		{"unknown command", ErrUnknownCommand, CodeInvalidQuery},
		{"other", errors.New("disk on fire"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorToCode(tt.err); got != tt.want {
				t.Errorf("ErrorToCode(%v) = %s, want %s", tt.err, CodeName(got), CodeName(tt.want))
			}
		})
	}
}

func TestNewInvalidReading(t *testing.T) {
	err := NewInvalidReading(1, -274, -273)

	if !Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	want := "reading 1 (-274) is below -273: temperature below minimum possible value"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}

	err := Wrapf(ErrEmptySeries, "input %s", "a.txt")
	if !IsEmpty(err) {
		t.Errorf("expected wrapped ErrEmptySeries, got %v", err)
	}
	if err.Error() != "input a.txt: series is empty" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	v := NewValidationErrors()

	if v.Err() != nil {
		t.Error("empty collector should return nil")
	}

	v.Add(nil)
	v.AddField("log.level", "unknown")
	v.AddMissing("shell.prompt")

	if !v.HasErrors() || len(v.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors))
	}

	err := v.Err()
	if !Is(err, ErrInvalidConfig) || !Is(err, ErrMissingField) {
		t.Errorf("expected both sentinels reachable, got %v", err)
	}
}

func TestCodeName(t *testing.T) {
	if CodeName(CodeEmptySeries) != "EmptySeries" {
		t.Errorf("unexpected name %q", CodeName(CodeEmptySeries))
	}
	if CodeName(42) != "Code(42)" {
		t.Errorf("unexpected name %q", CodeName(42))
	}
}
