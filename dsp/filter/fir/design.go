package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/window"
)

// LowPassSpec holds the parameters of a windowed-sinc low-pass design.
type LowPassSpec struct {
	// HalfWidth is M; the filter has 2M+1 taps.
	HalfWidth int `yaml:"half_width" json:"half_width"`

	// Cutoff is the cutoff frequency in Hz.
	Cutoff float64 `yaml:"cutoff" json:"cutoff"`

	// SampleRate is the sampling rate in Hz.
	SampleRate float64 `yaml:"sample_rate" json:"sample_rate"`
}

// Taps returns 2·HalfWidth+1.
func (s LowPassSpec) Taps() int {
	return 2*s.HalfWidth + 1
}

// Validate checks M >= 1, 0 < Cutoff < SampleRate/2 and SampleRate > 0.
// The returned error is a *core.ParamError naming the first violated
// constraint.
func (s LowPassSpec) Validate() error {
	if s.HalfWidth < 1 {
		return core.NewParamError("half-width M", float64(s.HalfWidth), "must be >= 1")
	}
	if !(s.Cutoff > 0) || math.IsInf(s.Cutoff, 0) {
		return core.NewParamError("cutoff", s.Cutoff, "must be > 0 and finite")
	}
	if !(s.SampleRate > 0) || math.IsInf(s.SampleRate, 0) {
		return core.NewParamError("sample rate", s.SampleRate, "must be > 0 and finite")
	}
	if s.Cutoff >= s.SampleRate/2 {
		return core.NewParamError("cutoff", s.Cutoff,
			fmt.Sprintf("must be below the Nyquist frequency %g", s.SampleRate/2))
	}
	return nil
}

// DesignOption configures [DesignLowPass].
type DesignOption func(*designConfig)

type designConfig struct {
	window     window.Type
	windowOpts []window.Option
}

// WithWindow tapers the truncated sinc with the given window instead of the
// default rectangular one.
func WithWindow(t window.Type, opts ...window.Option) DesignOption {
	return func(c *designConfig) {
		c.window = t
		c.windowOpts = opts
	}
}

// DesignLowPass returns the 2·halfWidth+1 normalized taps of a windowed-sinc
// low-pass filter with cutoff Hz at sampleRate Hz. Invalid parameters yield
// an error wrapping [core.ErrInvalidParameter].
func DesignLowPass(halfWidth int, cutoff, sampleRate float64, opts ...DesignOption) ([]float64, error) {
	spec := LowPassSpec{HalfWidth: halfWidth, Cutoff: cutoff, SampleRate: sampleRate}
	return spec.Design(opts...)
}

// Design returns the normalized taps for s. See [DesignLowPass].
func (s LowPassSpec) Design(opts ...DesignOption) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}

	cfg := designConfig{window: window.TypeRectangular}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := s.HalfWidth
	h := make([]float64, s.Taps())
	ratio := s.Cutoff / s.SampleRate
	for j := -m; j <= m; j++ {
		if j == 0 {
			h[j+m] = 2 * ratio
			continue
		}
		fj := float64(j)
		h[j+m] = math.Sin(2*math.Pi*ratio*fj) / (math.Pi * fj)
	}

	if err := window.Apply(cfg.window, h, cfg.windowOpts...); err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}

	sum := 0.0
	for _, v := range h {
		sum += v
	}
	if sum == 0 || !core.IsFinite(sum) {
		return nil, fmt.Errorf("fir: %w: taps sum to %v", core.ErrDegenerateInput, sum)
	}
	for i := range h {
		h[i] /= sum
	}
	return h, nil
}

// LowPass designs a low-pass filter and applies it to data. filtered has
// len(data) samples and h has 2·halfWidth+1 taps ordered from −M to M.
//
// Parameter violations wrap [core.ErrInvalidParameter]; an empty data slice
// wraps [core.ErrEmptyInput].
func LowPass(data []float64, halfWidth int, cutoff, sampleRate float64, opts ...DesignOption) (filtered, h []float64, err error) {
	h, err = DesignLowPass(halfWidth, cutoff, sampleRate, opts...)
	if err != nil {
		return nil, nil, err
	}

	f := &Filter{coeffs: h}
	filtered, err = f.Apply(data)
	if err != nil {
		return nil, nil, err
	}
	return filtered, h, nil
}
