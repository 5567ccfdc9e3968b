package regression

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const machineEpsilon = 0x1p-52

// Result is a fitted line y = Slope·t + Intercept together with its values
// at the input time stamps.
type Result struct {
	Slope     float64
	Intercept float64

	// Predicted[i] == Slope*time[i] + Intercept.
	Predicted []float64
}

// FitLinear fits y = slope·t + intercept to the (time, amplitude) pairs.
//
// Both slices must have the same length n >= 2, otherwise an error wrapping
// [core.ErrInvalidInput] is returned. If all time stamps are identical the
// normal equations are singular and the error wraps [core.ErrDegenerateInput].
// The same error is returned when the spread of the time stamps is lost in
// rounding, so no NaN, Inf or noise-driven coefficients are ever returned.
func FitLinear(time, amplitude []float64) (Result, error) {
	if err := core.CheckPairs("time", time, "amplitude", amplitude, 2); err != nil {
		return Result{}, fmt.Errorf("regression: %w", err)
	}
	if err := core.CheckFinite("time", time); err != nil {
		return Result{}, fmt.Errorf("regression: %w", err)
	}
	if err := core.CheckFinite("amplitude", amplitude); err != nil {
		return Result{}, fmt.Errorf("regression: %w", err)
	}

	if floats.Max(time) == floats.Min(time) {
		return Result{}, fmt.Errorf("regression: %w: time values are all identical", core.ErrDegenerateInput)
	}

	n := float64(len(time))

	var sx, sy, sxx, sxy float64
	for i, t := range time {
		y := amplitude[i]
		sx += t
		sy += y
		sxx += t * t
		sxy += t * y
	}

	denom := n*sxx - sx*sx
	if !core.IsFinite(denom) {
		return Result{}, fmt.Errorf("regression: %w: sums overflowed", core.ErrDegenerateInput)
	}
	// n·Sxx and Sx² each carry a rounding error of about n·ε·n·Sxx, so a
	// difference below that is noise, not spread in time.
	if denom <= n*machineEpsilon*n*sxx {
		return Result{}, fmt.Errorf("regression: %w: time spread %v is below rounding error",
			core.ErrDegenerateInput, floats.Max(time)-floats.Min(time))
	}

	slope := (n*sxy - sx*sy) / denom
	intercept := (sy - slope*sx) / n
	if !core.IsFinite(slope) || !core.IsFinite(intercept) {
		return Result{}, fmt.Errorf("regression: %w: non-finite coefficients (slope=%v, intercept=%v)",
			core.ErrDegenerateInput, slope, intercept)
	}

	predicted := make([]float64, len(time))
	for i, t := range time {
		predicted[i] = slope*t + intercept
	}

	return Result{
		Slope:     slope,
		Intercept: intercept,
		Predicted: predicted,
	}, nil
}

// At evaluates the fitted line at t.
func (r Result) At(t float64) float64 {
	return r.Slope*t + r.Intercept
}

// Residuals returns amplitude[i] - Predicted[i].
func (r Result) Residuals(amplitude []float64) ([]float64, error) {
	if len(amplitude) != len(r.Predicted) {
		return nil, fmt.Errorf("regression: %w: residual length mismatch: %d != %d",
			core.ErrInvalidInput, len(amplitude), len(r.Predicted))
	}
	out := make([]float64, len(amplitude))
	for i, y := range amplitude {
		out[i] = y - r.Predicted[i]
	}
	return out, nil
}

// RSquared returns the coefficient of determination of the fit against
// amplitude. A constant amplitude that is reproduced exactly yields 1.
func (r Result) RSquared(amplitude []float64) (float64, error) {
	if len(amplitude) != len(r.Predicted) {
		return 0, fmt.Errorf("regression: %w: length mismatch: %d != %d",
			core.ErrInvalidInput, len(amplitude), len(r.Predicted))
	}
	if len(amplitude) == 0 {
		return 0, fmt.Errorf("regression: %w", core.ErrEmptyInput)
	}

	// stat.RSquaredFrom divides by the total sum of squares, which is zero
	// for a flat signal.
	if floats.Max(amplitude) == floats.Min(amplitude) {
		for i, y := range amplitude {
			if y != r.Predicted[i] {
				return 0, nil
			}
		}
		return 1, nil
	}
	return stat.RSquaredFrom(r.Predicted, amplitude, nil), nil
}
