package boundz

import "math"

// Signed 64-bit checked arithmetic. Overflow is detected by pre-checking the
// operands against the int64 limits, so the operation itself never wraps.

// CheckedAddInt64 returns a + b, or None on overflow.
func CheckedAddInt64(a, b int64) Option[int64] {
	if (b > 0 && a > math.MaxInt64-b) ||
		(b < 0 && a < math.MinInt64-b) {
		return None[int64]()
	}
	return Some(a + b)
}

// CheckedSubInt64 returns a - b, or None on overflow.
func CheckedSubInt64(a, b int64) Option[int64] {
	if (b > 0 && a < math.MinInt64+b) ||
		(b < 0 && a > math.MaxInt64+b) {
		return None[int64]()
	}
	return Some(a - b)
}

// CheckedMulInt64 returns a * b, or None on overflow.
func CheckedMulInt64(a, b int64) Option[int64] {
	if (a > 0 && b > 0 && a > math.MaxInt64/b) ||
		(a > 0 && b <= 0 && b < math.MinInt64/a) ||
		(a <= 0 && b > 0 && a < math.MinInt64/b) ||
		(a < 0 && b <= 0 && b < math.MaxInt64/a) {
		return None[int64]()
	}
	return Some(a * b)
}

// CheckedDivInt64 returns a / b, or None if b is zero or the division overflows
// (MinInt64 / -1 has no representable result).
func CheckedDivInt64(a, b int64) Option[int64] {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return None[int64]()
	}
	return Some(a / b)
}
