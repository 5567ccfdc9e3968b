package analysis

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/window"
	"github.com/cwbudde/algo-signal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synth(t *testing.T, n int) signal.Signal {
	t.Helper()

	gen := signal.NewGenerator(signal.WithSampleRate(125), signal.WithSeed(7))
	sig, err := gen.Generate(n,
		signal.Trend(0.5, 1),
		signal.Sine(5, 0.2),
		signal.Noise(0.05),
	)
	require.NoError(t, err)
	return sig
}

func TestRunReport(t *testing.T) {
	sig := synth(t, 250)

	rep, err := Run(context.Background(), sig, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 250, rep.Samples)
	assert.InDelta(t, 1.0/125, rep.SampleInterval, 1e-12)

	// A weak sine over whole periods barely biases the trend.
	assert.InDelta(t, 0.5, rep.Regression.Slope, 0.1)
	assert.InDelta(t, 1, rep.Regression.Intercept, 0.1)
	assert.Len(t, rep.Regression.Predicted, 250)
	assert.Equal(t, 250, rep.Regression.Residuals.Length)

	require.Len(t, rep.Spectrum.Magnitude, 250)
	require.Len(t, rep.Spectrum.Frequencies, 250)
	freq, mag := rep.Spectrum.OneSided()
	assert.Len(t, freq, 125)
	assert.Len(t, mag, 125)
	assert.Equal(t, 125, rep.Spectrum.Stats.BinCount)

	assert.Len(t, rep.LowPass.ImpulseResponse, 21)
	assert.Len(t, rep.LowPass.Filtered, 250)
	testutil.RequireFinite(t, rep.LowPass.Filtered)
	assert.Equal(t, window.TypeRectangular, rep.LowPass.Window)
	assert.False(t, math.IsNaN(rep.LowPass.CutoffGainDB))
}

func TestRunPureSine(t *testing.T) {
	const (
		fs = 128.0
		n  = 128
	)
	gen := signal.NewGenerator(signal.WithSampleRate(fs))
	sig, err := gen.Generate(n, signal.Sine(8, 1))
	require.NoError(t, err)

	rep, err := Run(context.Background(), sig, Options{
		Filter: DefaultOptions().Filter,
		Window: window.TypeHann,
	})
	require.NoError(t, err)

	st := rep.Spectrum.Stats
	assert.Equal(t, 8, st.PeakBin)
	assert.InDelta(t, 8, st.PeakFreq, 1e-9)
	assert.InDelta(t, n/2, st.Peak, 1e-6)
	assert.InDelta(t, 0, st.DC, 1e-9)
}

func TestRunInvalidSignal(t *testing.T) {
	tests := []struct {
		name string
		sig  signal.Signal
		want error
	}{
		{
			name: "empty",
			sig:  signal.Signal{},
			want: core.ErrInvalidInput,
		},
		{
			name: "mismatched",
			sig:  signal.Signal{Time: []float64{0, 1, 2}, Amplitude: []float64{1, 2}},
			want: core.ErrInvalidInput,
		},
		{
			name: "not increasing",
			sig:  signal.Signal{Time: []float64{0, 1, 1}, Amplitude: []float64{1, 2, 3}},
			want: core.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Run(context.Background(), tt.sig, DefaultOptions())
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, rep)
		})
	}
}

func TestRunInvalidFilter(t *testing.T) {
	opts := DefaultOptions()
	opts.Filter.Cutoff = 70

	rep, err := Run(context.Background(), synth(t, 64), opts)
	require.ErrorIs(t, err, core.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "low-pass")
	assert.Nil(t, rep)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := Run(ctx, synth(t, 64), DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rep)
}

func TestReportJSON(t *testing.T) {
	rep, err := Run(context.Background(), synth(t, 32), DefaultOptions())
	require.NoError(t, err)

	b, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Contains(t, decoded, "regression")
	assert.Contains(t, decoded, "spectrum")

	lp, ok := decoded["low_pass"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rectangular", lp["window"])
}
