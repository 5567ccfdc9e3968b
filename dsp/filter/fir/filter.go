package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/conv"
	"github.com/cwbudde/algo-signal/dsp/core"
)

// Filter is a linear-phase FIR filter with an odd number of taps centered on
// the middle coefficient.
type Filter struct {
	coeffs []float64
}

// New creates a filter from centered coefficients. The coefficients are
// copied. len(coeffs) must be odd.
func New(coeffs []float64) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("fir: %w: no coefficients", core.ErrEmptyInput)
	}
	if len(coeffs)%2 == 0 {
		return nil, fmt.Errorf("fir: %w: need an odd tap count, got %d", core.ErrInvalidInput, len(coeffs))
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Filter{coeffs: c}, nil
}

// Taps returns the number of coefficients, 2·HalfWidth()+1.
func (f *Filter) Taps() int {
	return len(f.coeffs)
}

// HalfWidth returns M, the number of taps on each side of the center.
func (f *Filter) HalfWidth() int {
	return len(f.coeffs) / 2
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Apply filters data with zero-padded same-length convolution.
func (f *Filter) Apply(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("fir: %w: data", core.ErrEmptyInput)
	}
	if err := core.CheckFinite("data", data); err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}
	out, err := conv.Same(data, f.coeffs)
	if err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}
	return out, nil
}

// Response computes the complex frequency response at freqHz for the given
// sample rate, referenced to the center tap so a symmetric filter has a real
// response.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	m := f.HalfWidth()
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k-m)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
