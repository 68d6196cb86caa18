package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide returns numerator/denominator, or 0 when the denominator is 0.
// Aggregate totals degrade to zero rather than erroring.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Float64Ptr returns a pointer to v. Convenience for optional rate fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
