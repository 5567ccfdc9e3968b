package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minBlockSize is the smallest input block used when the caller lets
// NewOverlapAdd choose.
const minBlockSize = 256

// OverlapAdd convolves signals with a fixed kernel using FFT block
// convolution. The kernel spectrum is computed once; each input block is
// zero-padded, multiplied in the frequency domain and the block results are
// summed at their offsets.
//
// An OverlapAdd reuses its scratch buffers and is not safe for concurrent
// use.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	block    []complex128
	spectrum []complex128
}

// NewOverlapAdd creates an overlap-add convolver for kernel. If blockSize is
// <= 0 a size is derived from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minBlockSize)
	}

	// Each block result spans blockSize+len(kernel)-1 samples and must fit
	// without circular wrap.
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		block:     make([]complex128, fftSize),
		spectrum:  make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process returns the full linear convolution of input with the kernel,
// len(input)+KernelLen()-1 samples.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outLen := len(input) + oa.kernelLen - 1
	out := make([]float64, outLen)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		for i := range oa.block {
			oa.block[i] = 0
		}
		for i, v := range input[start:end] {
			oa.block[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i := range oa.spectrum {
			oa.spectrum[i] = oa.block[i] * oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.spectrum, oa.spectrum); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := min(end-start+oa.kernelLen-1, outLen-start)
		for i := range n {
			out[start+i] += real(oa.spectrum[i])
		}
	}

	return out, nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
