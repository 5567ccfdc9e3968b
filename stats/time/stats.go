// Package time computes time-domain summary statistics of a sample block.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int     `json:"length"`
	DC            float64 `json:"dc"` // mean
	RMS           float64 `json:"rms"`
	Max           float64 `json:"max"`
	MaxPos        int     `json:"max_pos"`
	Min           float64 `json:"min"`
	MinPos        int     `json:"min_pos"`
	Peak          float64 `json:"peak"`  // max(|max|, |min|)
	Range         float64 `json:"range"` // max - min
	Energy        float64 `json:"energy"`
	StdDev        float64 `json:"std_dev"` // sample (n-1) standard deviation
	ZeroCrossings int     `json:"zero_crossings"`
}

// Calculate computes the statistics of signal. An empty signal yields the
// zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	s := Stats{Length: n}
	s.MaxPos = floats.MaxIdx(signal)
	s.MinPos = floats.MinIdx(signal)
	s.Max = signal[s.MaxPos]
	s.Min = signal[s.MinPos]
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Range = s.Max - s.Min

	s.Energy = floats.Dot(signal, signal)
	s.RMS = math.Sqrt(s.Energy / float64(n))

	if n > 1 {
		s.DC, s.StdDev = stat.MeanStdDev(signal, nil)
	} else {
		s.DC = signal[0]
	}

	s.ZeroCrossings = ZeroCrossings(signal)
	return s
}

// RMS returns the root-mean-square level of signal, 0 if empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return floats.Norm(signal, 2) / math.Sqrt(float64(len(signal)))
}

// ZeroCrossings counts sign changes between consecutive samples. Samples
// that are exactly zero do not count as a crossing on their own.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}
