package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of amplitude·sin(2π·freqHz·i/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	return generate(length, func(i int) float64 { return amplitude * math.Sin(w*float64(i)) })
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) drawn
// from a source seeded with seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	return generate(length, func(int) float64 { return (2*rng.Float64() - 1) * amplitude })
}

// TimeAxis returns start, start+dt, start+2dt, ...
func TimeAxis(start, dt float64, length int) []float64 {
	return generate(length, func(i int) float64 { return start + float64(i)*dt })
}

// Line returns slope·t + intercept for every t in time.
func Line(time []float64, slope, intercept float64) []float64 {
	return generate(len(time), func(i int) float64 { return slope*time[i] + intercept })
}

// Impulse returns a unit impulse at pos; out-of-range positions give zeros.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC returns length copies of value.
func DC(value float64, length int) []float64 {
	return generate(length, func(int) float64 { return value })
}

func generate(length int, f func(i int) float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = f(i)
	}
	return out
}
