package boundz

import (
	"errors"
	"fmt"
	"time"
)

// ErrOverflow is the sentinel for arithmetic overflow. Errors returned by the
// rejecting Counter match it with errors.Is.
var ErrOverflow = errors.New("arithmetic overflow")

// OverflowError provides rich context about a rejected counter addition: which
// counter rejected it, the state it was in, the delta that did not fit, and when.
type OverflowError[T Unsigned] struct {
	Timestamp time.Time
	Counter   Name
	Value     T // counter value at the time of the rejected addition
	Delta     T // the addend that would have exceeded the limit
	Limit     T // the counter's configured bound
}

// Error implements the error interface, providing a detailed error message.
func (e *OverflowError[T]) Error() string {
	return fmt.Sprintf("counter %q rejected add of %d: value %d would exceed limit %d: %v",
		e.Counter, e.Delta, e.Value, e.Limit, ErrOverflow)
}

// Unwrap returns ErrOverflow, supporting errors.Is matching.
func (e *OverflowError[T]) Unwrap() error {
	return ErrOverflow
}

// BoundsError is the fault payload carried by the panic from Sequence.MustGet
// when the index is outside [0, Length). It marks a programming-error-class
// precondition violation and is deliberately not a recoverable return value.
type BoundsError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}
