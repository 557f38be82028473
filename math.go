package boundz

// MaxOf returns the maximum representable value of the unsigned type T.
func MaxOf[T Unsigned]() T {
	var zero T
	return ^zero
}

// WrappingAdd returns (x + y) reduced modulo the range size of T.
// This is Go's native unsigned addition, named to make the policy explicit.
func WrappingAdd[T Unsigned](x, y T) T {
	return x + y
}

// OverflowingAdd returns the wrapped sum together with a flag reporting whether
// the true sum exceeded the range of T.
func OverflowingAdd[T Unsigned](x, y T) (T, bool) {
	sum := x + y
	return sum, sum < x
}

// CheckedAdd returns x + y, or None if the sum exceeds the range of T.
func CheckedAdd[T Unsigned](x, y T) Option[T] {
	sum, overflow := OverflowingAdd(x, y)
	if overflow {
		return None[T]()
	}
	return Some(sum)
}

// SaturatingAdd returns x + y, clamped to the maximum value of T on overflow.
func SaturatingAdd[T Unsigned](x, y T) T {
	sum, overflow := OverflowingAdd(x, y)
	if overflow {
		return MaxOf[T]()
	}
	return sum
}

// WrappingSub returns (x - y) reduced modulo the range size of T.
func WrappingSub[T Unsigned](x, y T) T {
	return x - y
}

// OverflowingSub returns the wrapped difference together with a flag reporting
// whether the subtraction underflowed below zero.
func OverflowingSub[T Unsigned](x, y T) (T, bool) {
	return x - y, x < y
}

// CheckedSub returns x - y, or None if y > x.
func CheckedSub[T Unsigned](x, y T) Option[T] {
	if x < y {
		return None[T]()
	}
	return Some(x - y)
}

// SaturatingSub returns x - y, clamped to zero on underflow.
func SaturatingSub[T Unsigned](x, y T) T {
	if x < y {
		return 0
	}
	return x - y
}

// WrappingMul returns (x * y) reduced modulo the range size of T.
func WrappingMul[T Unsigned](x, y T) T {
	return x * y
}

// OverflowingMul returns the wrapped product together with a flag reporting
// whether the true product exceeded the range of T.
func OverflowingMul[T Unsigned](x, y T) (T, bool) {
	product := x * y
	if x == 0 {
		return product, false
	}
	return product, product/x != y
}

// CheckedMul returns x * y, or None if the product exceeds the range of T.
func CheckedMul[T Unsigned](x, y T) Option[T] {
	product, overflow := OverflowingMul(x, y)
	if overflow {
		return None[T]()
	}
	return Some(product)
}

// SaturatingMul returns x * y, clamped to the maximum value of T on overflow.
func SaturatingMul[T Unsigned](x, y T) T {
	product, overflow := OverflowingMul(x, y)
	if overflow {
		return MaxOf[T]()
	}
	return product
}

// CheckedDiv returns x / y, or None if y is zero. Unsigned division never
// overflows, so divide-by-zero is the only absent case.
func CheckedDiv[T Unsigned](x, y T) Option[T] {
	if y == 0 {
		return None[T]()
	}
	return Some(x / y)
}
