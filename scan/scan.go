package scan

// Real is the numeric constraint accepted by Any: any integer or
// floating-point element type, including named types.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Any reports whether xs contains a nonzero element, scanning in index
// order and returning at the first hit. An empty (or nil) slice yields
// false.
//
// NaN compares unequal to zero and therefore counts as "set".
func Any[T Real](xs []T) bool {
	for i := range xs {
		if xs[i] != 0 {
			return true
		}
	}

	return false
}
