// Package signal holds the sampled-signal value type shared by the analysis
// command, its two-column text format and a deterministic generator for
// synthetic test signals.
package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Signal is a sequence of (time, amplitude) observations with strictly
// increasing time stamps. The two slices are parallel.
type Signal struct {
	Time      []float64 `json:"time"`
	Amplitude []float64 `json:"amplitude"`
}

// Len returns the number of samples.
func (s Signal) Len() int {
	return len(s.Time)
}

// Validate checks that the slices are parallel, hold at least two samples,
// are finite and that time is strictly increasing. Errors wrap
// core.ErrInvalidInput.
func (s Signal) Validate() error {
	if err := core.CheckPairs("time", s.Time, "amplitude", s.Amplitude, 2); err != nil {
		return fmt.Errorf("signal: %w", err)
	}
	if err := core.CheckFinite("time", s.Time); err != nil {
		return fmt.Errorf("signal: %w", err)
	}
	if err := core.CheckFinite("amplitude", s.Amplitude); err != nil {
		return fmt.Errorf("signal: %w", err)
	}
	for i := 1; i < len(s.Time); i++ {
		if !(s.Time[i] > s.Time[i-1]) {
			return fmt.Errorf("signal: %w: time must be strictly increasing at index %d (%g after %g)",
				core.ErrInvalidInput, i, s.Time[i], s.Time[i-1])
		}
	}
	return nil
}

// SampleInterval returns the spacing of the first two time stamps, which is
// taken as the sampling interval of the whole signal.
func (s Signal) SampleInterval() (float64, error) {
	if len(s.Time) < 2 {
		return 0, fmt.Errorf("signal: %w: need two samples for a sample interval", core.ErrInvalidInput)
	}
	dt := s.Time[1] - s.Time[0]
	if !(dt > 0) {
		return 0, fmt.Errorf("signal: %w: non-positive sample interval %g", core.ErrInvalidInput, dt)
	}
	return dt, nil
}

// SampleRate returns 1/SampleInterval.
func (s Signal) SampleRate() (float64, error) {
	dt, err := s.SampleInterval()
	if err != nil {
		return 0, err
	}
	return 1 / dt, nil
}

// Uniform reports whether every time step is within relTol of the first
// one.
func (s Signal) Uniform(relTol float64) bool {
	dt, err := s.SampleInterval()
	if err != nil {
		return false
	}
	for i := 2; i < len(s.Time); i++ {
		if math.Abs((s.Time[i]-s.Time[i-1])-dt) > relTol*dt {
			return false
		}
	}
	return true
}

// Duration returns the time spanned by the samples.
func (s Signal) Duration() float64 {
	if len(s.Time) < 2 {
		return 0
	}
	return s.Time[len(s.Time)-1] - s.Time[0]
}
