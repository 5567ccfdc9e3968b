// Package testutil holds assertions and deterministic signals shared by the
// package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireFinite fails t on the first NaN or Inf in data.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// RequireSum fails t unless data sums to want within eps.
func RequireSum(t testing.TB, data []float64, want, eps float64) {
	t.Helper()
	require.InDelta(t, want, floats.Sum(data), eps, "sum of %d values", len(data))
}

// MaxAbsDiff returns the largest element-wise distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
