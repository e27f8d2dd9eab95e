package utils

// Map re-maps value from the range [start1, stop1] onto [start2, stop2].
// The result is not clamped. A zero-width source range yields start2.
func Map(value, start1, stop1, start2, stop2 float64) float64 {
	if stop1 == start1 {
		return start2
	}
	return start2 + (stop2-start2)*((value-start1)/(stop1-start1))
}

// Clamp limits value to the inclusive range [lo, hi]. Bounds are swapped
// when given out of order.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
