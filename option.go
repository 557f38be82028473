package boundz

import "fmt"

// Option represents a value that may be absent. It is the recoverable half of the
// error model: operations whose result can fall outside their domain (checked
// arithmetic on overflow, sequence access out of range) return None instead of an
// in-domain sentinel, and the caller decides the fallback.
//
// The zero value of Option[T] is None.
//
// Option is a value type. Copy it freely; it never references shared state.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present.
// When absent, the returned value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// MustGet returns the held value or panics when absent. Use it only where absence
// is a programming error; everywhere else prefer Get or OrElse.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("boundz: MustGet on absent Option")
	}
	return o.value
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
