package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeFromParts sets dst[k] = sqrt(re[k]² + im[k]²). All three slices
// must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts sets dst[k] = re[k]² + im[k]². All three slices must have
// the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// DFTPower returns |X[k]|² for k = 0..len(x)-1 using [DFT].
func DFTPower(x []float64) ([]float64, error) {
	re, im, err := DFT(x)
	if err != nil {
		return nil, err
	}
	pow := make([]float64, len(x))
	PowerFromParts(pow, re, im)
	return pow, nil
}

// Magnitude returns |X[k]| of complex bins, such as the output of an FFT
// library, for comparison with [DFTMagnitude].
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	parts := make([]float64, 2*len(bins))
	re, im := parts[:len(bins)], parts[len(bins):]
	for k, c := range bins {
		re[k], im[k] = real(c), imag(c)
	}
	mag := make([]float64, len(bins))
	MagnitudeFromParts(mag, re, im)
	return mag
}
