package boundz

// Sequence is an immutable fixed-length sequence with two access disciplines:
// Get, which signals an out-of-range index as absence, and MustGet, which treats
// it as a fault. The length is fixed at construction; elements cannot be
// replaced afterward, so a Sequence can be shared between goroutines freely.
type Sequence[T any] struct {
	items []T
}

// NewSequence returns a Sequence holding the given values. The values are
// copied; later mutation of the caller's arguments does not affect the Sequence.
func NewSequence[T any](values ...T) Sequence[T] {
	items := make([]T, len(values))
	copy(items, values)
	return Sequence[T]{items: items}
}

// Len returns the fixed length of the sequence.
func (s Sequence[T]) Len() int {
	return len(s.items)
}

// Get returns the element at index i, or None when i is outside [0, Len()).
// This is the recoverable access discipline; the caller decides the fallback.
func (s Sequence[T]) Get(i int) Option[T] {
	if i < 0 || i >= len(s.items) {
		return None[T]()
	}
	return Some(s.items[i])
}

// MustGet returns the element at index i, or panics with a *BoundsError when i
// is outside [0, Len()). An out-of-range index here is a programming error, not
// an expected condition; use Get where absence is a legitimate outcome.
func (s Sequence[T]) MustGet(i int) T {
	if i < 0 || i >= len(s.items) {
		panic(&BoundsError{Index: i, Length: len(s.items)})
	}
	return s.items[i]
}

// Values returns a copy of the sequence contents.
func (s Sequence[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
