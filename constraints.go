package boundz

// Signed is a constraint that permits any signed integer type.
// Taken from https://pkg.go.dev/golang.org/x/exp/constraints; copied here
// since the constraints package future is uncertain.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
// Taken from https://pkg.go.dev/golang.org/x/exp/constraints; copied here
// since the constraints package future is uncertain.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}
