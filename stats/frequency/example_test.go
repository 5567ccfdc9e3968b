package frequency_test

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/spectrum"
	"github.com/cwbudde/algo-signal/stats/frequency"
)

func ExampleCalculate() {
	const n = 16
	x := make([]float64, n)
	for i := range x {
		// Alternating 2, 0 only has energy at DC and Nyquist.
		x[i] = 2
		if i%2 == 1 {
			x[i] = 0
		}
	}
	mag, _ := spectrum.DFTMagnitude(x)
	freq, _ := spectrum.Frequencies(n, 0.25)

	s, _ := frequency.Calculate(spectrum.OneSided(mag), spectrum.OneSided(freq))
	fmt.Printf("bins=%d dc=%.1f\n", s.BinCount, s.DC)
	// Output:
	// bins=8 dc=16.0
}
