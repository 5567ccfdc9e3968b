// Package conv provides linear convolution of real sequences.
//
// [Direct] accumulates in the time domain in O(N·M). [OverlapAdd] convolves
// block by block through the FFT and is used by [Full] for kernels longer
// than 64 samples.
//
// [Same] is the shape the fir package filters with: the output has the
// length of the data and is centered on the full result, samples outside the
// data being zero. For an odd kernel of length 2M+1 that is
//
//	y[t] = Σ_{j=-M}^{M} h[j+M]·x[t−j]
//
// Direct and FFT results agree to floating-point tolerance, not bit for bit.
package conv
