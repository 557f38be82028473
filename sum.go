package boundz

// Sum holds the result of one addition evaluated under all four overflow
// policies. Every field derives from the same two operands at the same modulus,
// so the fields are always mutually consistent: Value equals Wrapped, Overflowed
// is true exactly when Checked is absent, and Saturated equals Wrapped whenever
// no overflow occurred.
type Sum[T Unsigned] struct {
	Wrapped    T         // (x + y) mod range size
	Checked    Option[T] // absent on overflow
	Value      T         // wrapped value, paired with Overflowed
	Overflowed bool      // whether the true sum exceeded the range
	Saturated  T         // clamped to MaxOf[T]() on overflow
}

// Add computes x + y under all four overflow policies at once.
//
// Add never panics for any pair of operands and has no side effects; repeated
// calls with identical inputs yield identical Sums.
//
// Example:
//
//	s := boundz.Add[uint8](250, 10) // true sum 260 exceeds 255
//	s.Wrapped    // 4
//	s.Checked    // None
//	s.Overflowed // true, s.Value == 4
//	s.Saturated  // 255
func Add[T Unsigned](x, y T) Sum[T] {
	value, overflowed := OverflowingAdd(x, y)
	return Sum[T]{
		Wrapped:    WrappingAdd(x, y),
		Checked:    CheckedAdd(x, y),
		Value:      value,
		Overflowed: overflowed,
		Saturated:  SaturatingAdd(x, y),
	}
}
