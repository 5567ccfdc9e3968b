package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// DFT returns the real and imaginary parts of the discrete Fourier transform
// of x, computed directly in O(n²):
//
//	re[k] =  Σ x[i]·cos(2πki/n)
//	im[k] = −Σ x[i]·sin(2πki/n)
//
// The result is unnormalized. An empty x yields an error wrapping
// [core.ErrEmptyInput].
func DFT(x []float64) (re, im []float64, err error) {
	n := len(x)
	if n == 0 {
		return nil, nil, fmt.Errorf("spectrum: %w", core.ErrEmptyInput)
	}

	// ki is reduced modulo n so the angle table only holds n entries and the
	// argument to cos/sin never grows with k.
	cosTab, sinTab := twiddles(n)

	re = make([]float64, n)
	im = make([]float64, n)
	for k := range n {
		var sr, si float64
		idx := 0
		for i := range n {
			sr += x[i] * cosTab[idx]
			si -= x[i] * sinTab[idx]
			idx += k
			if idx >= n {
				idx -= n
			}
		}
		re[k] = sr
		im[k] = si
	}
	return re, im, nil
}

// DFTMagnitude returns |X[k]| for k = 0..len(x)-1 using [DFT].
func DFTMagnitude(x []float64) ([]float64, error) {
	re, im, err := DFT(x)
	if err != nil {
		return nil, err
	}
	mag := make([]float64, len(x))
	MagnitudeFromParts(mag, re, im)
	return mag, nil
}

func twiddles(n int) (cosTab, sinTab []float64) {
	cosTab = make([]float64, n)
	sinTab = make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for m := range n {
		sinTab[m], cosTab[m] = math.Sincos(step * float64(m))
	}
	return cosTab, sinTab
}

// Frequencies returns the center frequency in Hz of each of the n DFT bins
// for samples spaced dt seconds apart. Bins below ceil(n/2) are positive,
// k/(n·dt); the remaining bins hold the negative frequencies (k−n)/(n·dt).
func Frequencies(n int, dt float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: %w", core.NewParamError("n", float64(n), "must be > 0"))
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("spectrum: %w", core.NewParamError("dt", dt, "must be > 0 and finite"))
	}

	out := make([]float64, n)
	scale := 1 / (float64(n) * dt)
	half := (n + 1) / 2
	for k := range out {
		if k < half {
			out[k] = float64(k) * scale
		} else {
			out[k] = float64(k-n) * scale
		}
	}
	return out, nil
}

// OneSided returns the first len(values)/2 entries of a full-length spectrum
// or bin slice, the non-redundant half for real input. The returned slice
// aliases values.
func OneSided(values []float64) []float64 {
	return values[:len(values)/2]
}
