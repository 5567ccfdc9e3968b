package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Generator creates deterministic synthetic signals sampled at a fixed rate.
type Generator struct {
	sampleRate float64
	start      float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sampling rate in Hz. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithStart sets the first time stamp.
func WithStart(t float64) Option {
	return func(g *Generator) {
		g.start = t
	}
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator returns a generator sampling at 125 Hz from t=0 with seed 1
// unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 125, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator's sampling rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Component adds one term to the amplitude at time t.
type Component func(t float64, rng *rand.Rand) float64

// Trend is the line slope·t + intercept.
func Trend(slope, intercept float64) Component {
	return func(t float64, _ *rand.Rand) float64 {
		return slope*t + intercept
	}
}

// Sine is amplitude·sin(2π·freqHz·t).
func Sine(freqHz, amplitude float64) Component {
	return func(t float64, _ *rand.Rand) float64 {
		return amplitude * math.Sin(2*math.Pi*freqHz*t)
	}
}

// Noise is uniform white noise in [-amplitude, amplitude).
func Noise(amplitude float64) Component {
	return func(_ float64, rng *rand.Rand) float64 {
		return (rng.Float64()*2 - 1) * amplitude
	}
}

// Generate returns samples observations of the sum of components. The same
// generator settings always produce the same signal.
func (g *Generator) Generate(samples int, components ...Component) (Signal, error) {
	if samples < 2 {
		return Signal{}, fmt.Errorf("signal: %w: need at least 2 samples, got %d", core.ErrInvalidInput, samples)
	}

	rng := rand.New(rand.NewSource(g.seed))
	sig := Signal{
		Time:      make([]float64, samples),
		Amplitude: make([]float64, samples),
	}
	dt := 1 / g.sampleRate
	for i := range samples {
		t := g.start + float64(i)*dt
		sig.Time[i] = t
		for _, c := range components {
			sig.Amplitude[i] += c(t, rng)
		}
	}
	return sig, nil
}
