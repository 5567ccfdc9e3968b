package core

import (
	"fmt"
	"math"
)

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckFinite returns an ErrInvalidInput error naming the first non-finite
// element of data, or nil.
func CheckFinite(name string, data []float64) error {
	for i, v := range data {
		if !IsFinite(v) {
			return fmt.Errorf("%w: %s[%d] is not finite (%v)", ErrInvalidInput, name, i, v)
		}
	}
	return nil
}

// CheckPairs validates two parallel slices of equal length holding at least
// minLen samples.
func CheckPairs(xName string, x []float64, yName string, y []float64, minLen int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %s/%s length mismatch: %d != %d", ErrInvalidInput, xName, yName, len(x), len(y))
	}
	if len(x) < minLen {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidInput, minLen, len(x))
	}
	return nil
}

// NearlyEqual reports whether a and b are equal within eps, using a relative
// comparison once the magnitudes exceed one.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

const defaultEpsilon = 1e-12
