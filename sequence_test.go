package boundz

import (
	"errors"
	"testing"
)

func TestSequence_Get(t *testing.T) {
	seq := NewSequence[int32](1, 2, 3, 4, 5)

	if v, ok := seq.Get(0).Get(); !ok || v != 1 {
		t.Errorf("Expected Get(0) = Some(1), got %v", seq.Get(0))
	}
	if v, ok := seq.Get(4).Get(); !ok || v != 5 {
		t.Errorf("Expected Get(4) = Some(5), got %v", seq.Get(4))
	}
	if got := seq.Get(5); got.IsSome() {
		t.Errorf("Expected Get(5) = None, got %v", got)
	}
	if got := seq.Get(9); got.IsSome() {
		t.Errorf("Expected Get(9) = None, got %v", got)
	}
	if got := seq.Get(-1); got.IsSome() {
		t.Errorf("Expected Get(-1) = None, got %v", got)
	}
}

func TestSequence_MustGet(t *testing.T) {
	seq := NewSequence[int32](1, 2, 3, 4, 5)

	if got := seq.MustGet(1); got != 2 {
		t.Errorf("Expected MustGet(1) = 2, got %d", got)
	}
}

func TestSequence_MustGetOutOfRangePanics(t *testing.T) {
	seq := NewSequence[int32](1, 2, 3, 4, 5)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected MustGet(10) to panic")
		}

		boundsErr, ok := r.(*BoundsError)
		if !ok {
			t.Fatalf("Expected panic value of type *BoundsError, got %T", r)
		}
		if boundsErr.Index != 10 || boundsErr.Length != 5 {
			t.Errorf("Expected BoundsError{Index: 10, Length: 5}, got %+v", boundsErr)
		}
		if boundsErr.Error() != "index 10 out of range [0, 5)" {
			t.Errorf("Unexpected fault message: %q", boundsErr.Error())
		}
	}()

	seq.MustGet(10)
}

func TestSequence_MustGetNegativeIndexPanics(t *testing.T) {
	seq := NewSequence(1, 2, 3)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustGet(-1) to panic")
		}
	}()

	seq.MustGet(-1)
}

func TestSequence_Len(t *testing.T) {
	if got := NewSequence(1, 2, 3, 4, 5).Len(); got != 5 {
		t.Errorf("Expected Len 5, got %d", got)
	}
	if got := NewSequence[int]().Len(); got != 0 {
		t.Errorf("Expected Len 0 for empty sequence, got %d", got)
	}
}

func TestSequence_ValuesIsACopy(t *testing.T) {
	seq := NewSequence(1, 2, 3)

	values := seq.Values()
	values[0] = 99

	if got := seq.MustGet(0); got != 1 {
		t.Errorf("Expected sequence unchanged after mutating Values copy, got %d", got)
	}
}

func TestSequence_CopiesConstructorArguments(t *testing.T) {
	backing := []string{"January", "February", "March"}
	seq := NewSequence(backing...)

	backing[0] = "mutated"

	if v, ok := seq.Get(0).Get(); !ok || v != "January" {
		t.Errorf("Expected sequence to hold its own copy, got %v", seq.Get(0))
	}
}

func TestBoundsError_IsAnError(t *testing.T) {
	var err error = &BoundsError{Index: 7, Length: 5}

	var boundsErr *BoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatal("Expected errors.As to match *BoundsError")
	}
	if boundsErr.Index != 7 {
		t.Errorf("Expected Index 7, got %d", boundsErr.Index)
	}
}
