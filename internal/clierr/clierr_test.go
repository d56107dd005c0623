package clierr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/idilsaglam/projects/internal/clierr"
)

func TestErrorImplementsError(t *testing.T) {
	var err error = clierr.New(clierr.ItemNotFound, "item not found: p9")
	if err.Error() != "item not found: p9" {
		t.Errorf("Error() = %q, want %q", err.Error(), "item not found: p9")
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("switch: %w", clierr.New(clierr.HandlerNotSet, "no handler"))

	var target *clierr.Error
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed to unwrap *clierr.Error")
	}
	if target.Code != clierr.HandlerNotSet {
		t.Errorf("Code = %q, want %q", target.Code, clierr.HandlerNotSet)
	}
}

func TestIs(t *testing.T) {
	joined := errors.Join(errors.New("other"), clierr.New(clierr.MissingAttribute, "no data"))
	if !clierr.Is(joined, clierr.MissingAttribute) {
		t.Error("Is should find the code through errors.Join")
	}
	if clierr.Is(joined, clierr.ItemNotFound) {
		t.Error("Is matched the wrong code")
	}
	if clierr.Is(nil, clierr.ItemNotFound) {
		t.Error("Is(nil) = true")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{clierr.ItemNotFound, 1},
		{clierr.ElementNotFound, 1},
		{clierr.InternalError, 2},
		{clierr.InvalidConfig, 2},
	}
	for _, tt := range tests {
		if got := clierr.New(tt.code, "msg").ExitCode(); got != tt.want {
			t.Errorf("ExitCode(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestNewfWithDetails(t *testing.T) {
	err := clierr.Newf(clierr.ElementNotFound, "no element %q", "p1").
		WithDetails(map[string]any{"id": "p1"})
	if err.Message != `no element "p1"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Details["id"] != "p1" {
		t.Errorf("Details[id] = %v, want p1", err.Details["id"])
	}
}

func TestSilentError(t *testing.T) {
	err := &clierr.SilentError{Code: 1}
	if err.Error() != "exit 1" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit 1")
	}
}
