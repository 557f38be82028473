package boundz

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestOverflowError_Message(t *testing.T) {
	err := &OverflowError[uint8]{
		Timestamp: time.Now(),
		Counter:   "quota",
		Value:     250,
		Delta:     10,
		Limit:     255,
	}

	msg := err.Error()
	if !strings.Contains(msg, `"quota"`) {
		t.Errorf("Expected message to name the counter, got %q", msg)
	}
	if !strings.Contains(msg, "250") || !strings.Contains(msg, "10") || !strings.Contains(msg, "255") {
		t.Errorf("Expected message to carry value, delta, and limit, got %q", msg)
	}
}

func TestOverflowError_Unwrap(t *testing.T) {
	var err error = &OverflowError[uint16]{Counter: "wide", Value: 1, Delta: 2, Limit: 3}

	if !errors.Is(err, ErrOverflow) {
		t.Error("Expected errors.Is(err, ErrOverflow) to hold")
	}

	var overflowErr *OverflowError[uint16]
	if !errors.As(err, &overflowErr) {
		t.Fatal("Expected errors.As to match *OverflowError[uint16]")
	}
	if overflowErr.Counter != "wide" {
		t.Errorf("Expected counter name 'wide', got %s", overflowErr.Counter)
	}
}
