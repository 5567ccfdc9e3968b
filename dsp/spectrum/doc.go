// Package spectrum computes discrete Fourier spectra of real-valued signals.
//
// [DFTMagnitude] evaluates the transform directly from its definition,
//
//	X[k] = Σ x[i]·(cos(2πki/n) − j·sin(2πki/n)),   k = 0..n-1
//
// and returns the unnormalized magnitudes |X[k]|. The cost is O(n²)
// multiply-adds, which is fine for a few thousand samples and becomes the
// performance ceiling well before that for interactive use. The direct form
// is kept on purpose: a fast transform sums in a different order and gives
// results that differ in the last bits, so compare against one only with a
// tolerance.
//
// For real input the magnitude spectrum is symmetric about n/2. Use
// [OneSided] to keep the non-redundant half and [Frequencies] to label the
// bins in Hz.
//
// The package also keeps small helpers ([Magnitude], [DFTPower],
// [MagnitudeFromParts] and [PowerFromParts]) that reduce complex bins to
// real spectra using the SIMD kernels from algo-vecmath.
package spectrum
