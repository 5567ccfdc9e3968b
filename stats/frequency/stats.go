// Package frequency computes descriptors of a one-sided magnitude spectrum.
package frequency

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Stats holds frequency-domain statistics of a magnitude spectrum.
type Stats struct {
	BinCount int     `json:"bin_count"`
	DC       float64 `json:"dc"` // bin 0 magnitude

	// Peak is the largest magnitude above DC and PeakFreq its frequency.
	// For a single-bin spectrum they describe bin 0.
	Peak     float64 `json:"peak"`
	PeakBin  int     `json:"peak_bin"`
	PeakFreq float64 `json:"peak_freq"`

	Centroid float64 `json:"centroid"` // magnitude-weighted mean frequency (Hz)
	Energy   float64 `json:"energy"`   // sum of squared magnitudes
}

// Calculate computes statistics of magnitude, whose bins are centered at
// freqHz. Both slices must have the same non-zero length; typically they are
// the one-sided halves of spectrum.DFTMagnitude and spectrum.Frequencies.
func Calculate(magnitude, freqHz []float64) (Stats, error) {
	if len(magnitude) == 0 {
		return Stats{}, fmt.Errorf("frequency: %w", core.ErrEmptyInput)
	}
	if err := core.CheckPairs("magnitude", magnitude, "frequency", freqHz, 1); err != nil {
		return Stats{}, fmt.Errorf("frequency: %w", err)
	}

	s := Stats{
		BinCount: len(magnitude),
		DC:       magnitude[0],
		Energy:   floats.Dot(magnitude, magnitude),
	}

	if len(magnitude) > 1 {
		s.PeakBin = 1 + floats.MaxIdx(magnitude[1:])
	}
	s.Peak = magnitude[s.PeakBin]
	s.PeakFreq = freqHz[s.PeakBin]

	if sum := floats.Sum(magnitude); sum > 0 {
		s.Centroid = floats.Dot(magnitude, freqHz) / sum
	}
	return s, nil
}
