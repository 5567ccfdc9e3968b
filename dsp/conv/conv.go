package conv

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = fmt.Errorf("conv: %w", core.ErrEmptyInput)
	ErrEmptyKernel = fmt.Errorf("conv: %w: kernel", core.ErrEmptyInput)
)

// Mode selects which part of the full convolution [ConvolveMode] returns.
type Mode int

const (
	ModeFull  Mode = iota // len(a)+len(b)-1 samples
	ModeSame              // len(a) samples centered on the full result
	ModeValid             // only the samples where a and b overlap completely
)

var modeNames = [...]string{
	ModeFull:  "full",
	ModeSame:  "same",
	ModeValid: "valid",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Len returns the output length of mode for inputs of lenA and lenB samples.
func (m Mode) Len(lenA, lenB int) int {
	switch m {
	case ModeSame:
		return lenA
	case ModeValid:
		return max(lenA, lenB) - min(lenA, lenB) + 1
	default:
		return lenA + lenB - 1
	}
}

// Kernels longer than this go through [OverlapAdd].
const directThreshold = 64

func checkInputs(a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}
	return nil
}

// Direct returns the full linear convolution of a and b computed in the time
// domain, len(a)+len(b)-1 samples.
func Direct(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a)+len(b)-1)
	accumulate(out, a, b)
	return out, nil
}

// accumulate adds x[i]·h to dst[i:i+len(h)] for every i. dst must be zeroed
// and hold len(x)+len(h)-1 samples.
func accumulate(dst, x, h []float64) {
	for i, v := range x {
		if v != 0 {
			floats.AddScaled(dst[i:i+len(h)], v, h)
		}
	}
}

// Full returns the full linear convolution of a and b. The arguments
// commute; the shorter one is treated as the kernel, and kernels longer than
// 64 samples are convolved with [OverlapAdd].
func Full(a, b []float64) ([]float64, error) {
	if err := checkInputs(a, b); err != nil {
		return nil, err
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) <= directThreshold {
		return Direct(a, b)
	}
	return OverlapAddConvolve(a, b)
}

// Same returns the len(data) samples of the full convolution starting at
// (len(kernel)-1)/2, treating samples outside data as zero. The kernel may be
// longer than data.
func Same(data, kernel []float64) ([]float64, error) {
	if err := checkInputs(data, kernel); err != nil {
		return nil, err
	}
	if len(kernel) > directThreshold && len(data) > directThreshold {
		full, err := Full(data, kernel)
		if err != nil {
			return nil, err
		}
		start := (len(kernel) - 1) / 2
		return full[start : start+len(data)], nil
	}

	out := make([]float64, len(data))
	offset := (len(kernel) - 1) / 2
	for i := range out {
		n := i + offset
		lo := max(0, n-len(data)+1)
		hi := min(len(kernel)-1, n)

		var acc float64
		for k := lo; k <= hi; k++ {
			acc += kernel[k] * data[n-k]
		}
		out[i] = acc
	}
	return out, nil
}

// ConvolveMode convolves a with b and returns the part selected by mode.
// Unknown modes wrap [core.ErrInvalidParameter].
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	switch mode {
	case ModeSame:
		return Same(a, b)
	case ModeFull:
		return Full(a, b)
	case ModeValid:
		full, err := Full(a, b)
		if err != nil {
			return nil, err
		}
		lo := min(len(a), len(b)) - 1
		return full[lo : lo+mode.Len(len(a), len(b))], nil
	default:
		return nil, fmt.Errorf("conv: %w: unknown mode %v", core.ErrInvalidParameter, mode)
	}
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
