// Package analysis runs the regression, spectrum and low-pass analyses over
// one signal and collects their results in a Report.
//
// The three analyses share no state and run in parallel. None of them can be
// interrupted once started; the context is only checked before each one
// begins, so a cancelled context stops work that has not started yet.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/cwbudde/algo-signal/dsp/filter/fir"
	"github.com/cwbudde/algo-signal/dsp/regression"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
	"github.com/cwbudde/algo-signal/dsp/window"
	"github.com/cwbudde/algo-signal/stats/frequency"
	timestats "github.com/cwbudde/algo-signal/stats/time"
	"golang.org/x/sync/errgroup"
)

// Options selects the low-pass design applied by Run.
type Options struct {
	Filter fir.LowPassSpec
	Window window.Type
}

// DefaultOptions returns M=10, Fc=50 Hz, fs=125 Hz with a rectangular window.
func DefaultOptions() Options {
	return Options{
		Filter: fir.LowPassSpec{HalfWidth: 10, Cutoff: 50, SampleRate: 125},
		Window: window.TypeRectangular,
	}
}

// Report bundles the results of the three analyses.
type Report struct {
	Samples        int     `json:"samples"`
	SampleInterval float64 `json:"sample_interval"`

	Regression RegressionReport `json:"regression"`
	Spectrum   SpectrumReport   `json:"spectrum"`
	LowPass    LowPassReport    `json:"low_pass"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// RegressionReport holds the linear trend fit.
type RegressionReport struct {
	Slope     float64         `json:"slope"`
	Intercept float64         `json:"intercept"`
	RSquared  float64         `json:"r_squared"`
	Predicted []float64       `json:"predicted"`
	Residuals timestats.Stats `json:"residuals"`
}

// SpectrumReport holds the full DFT magnitude spectrum and its bin
// frequencies. Stats describe the one-sided half.
type SpectrumReport struct {
	Frequencies []float64       `json:"frequencies"`
	Magnitude   []float64       `json:"magnitude"`
	Stats       frequency.Stats `json:"stats"`
}

// OneSided returns the non-redundant halves of Frequencies and Magnitude.
func (s SpectrumReport) OneSided() (freq, mag []float64) {
	return spectrum.OneSided(s.Frequencies), spectrum.OneSided(s.Magnitude)
}

// LowPassReport holds the designed filter and the filtered amplitude.
type LowPassReport struct {
	Spec            fir.LowPassSpec `json:"spec"`
	Window          window.Type     `json:"window"`
	ImpulseResponse []float64       `json:"impulse_response"`
	Filtered        []float64       `json:"filtered"`

	// CutoffGainDB is the filter's magnitude response at the cutoff.
	CutoffGainDB float64         `json:"cutoff_gain_db"`
	Output       timestats.Stats `json:"output"`
	Removed      timestats.Stats `json:"removed"` // input minus output
}

// Run validates sig and runs the three analyses concurrently. The first
// error cancels analyses that have not started and is returned; no partial
// report is produced.
func Run(ctx context.Context, sig signal.Signal, opts Options) (*Report, error) {
	if err := sig.Validate(); err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	dt, err := sig.SampleInterval()
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	start := time.Now()
	rep := &Report{Samples: sig.Len(), SampleInterval: dt}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := runRegression(sig)
		if err != nil {
			return fmt.Errorf("analysis: regression: %w", err)
		}
		rep.Regression = r
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := runSpectrum(sig.Amplitude, dt)
		if err != nil {
			return fmt.Errorf("analysis: spectrum: %w", err)
		}
		rep.Spectrum = r
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := runLowPass(sig.Amplitude, opts)
		if err != nil {
			return fmt.Errorf("analysis: low-pass: %w", err)
		}
		rep.LowPass = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep.Elapsed = time.Since(start)
	return rep, nil
}

func runRegression(sig signal.Signal) (RegressionReport, error) {
	fit, err := regression.FitLinear(sig.Time, sig.Amplitude)
	if err != nil {
		return RegressionReport{}, err
	}
	resid, err := fit.Residuals(sig.Amplitude)
	if err != nil {
		return RegressionReport{}, err
	}
	r2, err := fit.RSquared(sig.Amplitude)
	if err != nil {
		return RegressionReport{}, err
	}
	return RegressionReport{
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		RSquared:  r2,
		Predicted: fit.Predicted,
		Residuals: timestats.Calculate(resid),
	}, nil
}

func runSpectrum(amplitude []float64, dt float64) (SpectrumReport, error) {
	mag, err := spectrum.DFTMagnitude(amplitude)
	if err != nil {
		return SpectrumReport{}, err
	}
	freq, err := spectrum.Frequencies(len(amplitude), dt)
	if err != nil {
		return SpectrumReport{}, err
	}

	rep := SpectrumReport{Frequencies: freq, Magnitude: mag}
	if half := spectrum.OneSided(mag); len(half) > 0 {
		st, err := frequency.Calculate(half, spectrum.OneSided(freq))
		if err != nil {
			return SpectrumReport{}, err
		}
		rep.Stats = st
	}
	return rep, nil
}

func runLowPass(amplitude []float64, opts Options) (LowPassReport, error) {
	spec := opts.Filter
	filtered, h, err := fir.LowPass(amplitude, spec.HalfWidth, spec.Cutoff, spec.SampleRate, fir.WithWindow(opts.Window))
	if err != nil {
		return LowPassReport{}, err
	}

	f, err := fir.New(h)
	if err != nil {
		return LowPassReport{}, err
	}

	removed := make([]float64, len(amplitude))
	for i, x := range amplitude {
		removed[i] = x - filtered[i]
	}

	return LowPassReport{
		Spec:            spec,
		Window:          opts.Window,
		ImpulseResponse: h,
		Filtered:        filtered,
		CutoffGainDB:    f.MagnitudeDB(spec.Cutoff, spec.SampleRate),
		Output:          timestats.Calculate(filtered),
		Removed:         timestats.Calculate(removed),
	}, nil
}
