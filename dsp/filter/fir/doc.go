// Package fir designs windowed-sinc low-pass filters and applies them to
// finite signals.
//
// [DesignLowPass] samples the ideal low-pass impulse response at taps
// j = −M..M,
//
//	h[j] = 2·fc/fs                  j == 0
//	h[j] = sin(2π·fc·j/fs) / (π·j)  otherwise
//
// multiplies it by a window and scales the taps to sum to one, so the
// filter passes DC unchanged. The taps are returned in ascending order; index
// 0 holds tap −M.
//
// The default window is rectangular, i.e. the sinc is simply truncated.
// Truncation leaves Gibbs ripple of roughly 9% near the cutoff in the
// passband and a slowly decaying stopband. That is a known limitation of the
// default; pass [WithWindow] to taper the taps instead.
//
// [LowPass] designs the filter and applies it with zero-padded same-length
// convolution: the output has the input's length and
//
//	y[t] = Σ_{j=-M}^{M} h[j]·x[t−j]
//
// with samples outside the input treated as zero. Near both ends the filter
// therefore sees fewer than 2M+1 real samples and the output droops toward
// zero.
package fir
