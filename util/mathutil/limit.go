package mathutil

import "cmp"

func Limit[T cmp.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

func LimitInt(v int, min, max int) int {
	return Limit(v, min, max)
}
func LimitFloat64(v float64, min, max float64) float64 {
	return Limit(v, min, max)
}

//----------

// Rounds towards zero, saturating at the int limits (also NaN is zero).
func TruncFloat64ToInt(v float64) int {
	const maxInt = int(^uint(0) >> 1)
	const minInt = -maxInt - 1
	switch {
	case v != v:
		return 0
	case v >= float64(maxInt):
		return maxInt
	case v <= float64(minInt):
		return minInt
	}
	return int(v)
}
