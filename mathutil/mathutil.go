// Package mathutil holds the numeric helpers shared by the shape types.
package mathutil

import "math"

// Pi is π at float64 precision.
const Pi = math.Pi

// Clamp restricts value to the closed interval [minValue, maxValue].
//
// It evaluates max(minValue, min(value, maxValue)) with ordered comparisons:
// each step keeps its first operand unless the second compares strictly
// past it. When minValue > maxValue the result is minValue; callers must not
// rely on it. A NaN value clamps to minValue, a NaN maxValue is ignored and
// a NaN minValue is returned as is.
func Clamp(value, minValue, maxValue float64) float64 {
	m := value
	if maxValue < m {
		m = maxValue
	}
	if !(m > minValue) {
		m = minValue
	}
	return m
}
