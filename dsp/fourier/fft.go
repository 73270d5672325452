package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Twiddles returns the n unit rotations exp(-2*pi*i*j/n) for j in [0, n).
func Twiddles(n int) []complex128 {
	if n <= 0 {
		return nil
	}
	out := make([]complex128, n)
	for j := range out {
		sin, cos := math.Sincos(-2 * math.Pi * float64(j) / float64(n))
		out[j] = complex(cos, sin)
	}
	return out
}

// Plan holds the precomputed twiddle factors and bit-reversal table for one
// power-of-two transform length. A Plan is read-only after construction and
// may be shared between goroutines.
type Plan struct {
	n        int
	bits     int
	twiddles []complex128
	rev      []int
}

// NewPlan prepares a radix-2 transform of length n.
func NewPlan(n int) (*Plan, error) {
	if !core.IsPowerOf2(n) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	bits := core.Log2(n)
	return &Plan{
		n:        n,
		bits:     bits,
		twiddles: Twiddles(n),
		rev:      BitReversalTable(bits),
	}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Bits returns log2 of the transform length.
func (p *Plan) Bits() int { return p.bits }

// Forward computes the unnormalized DFT of src into dst.
//
// dst must have length Len(). src may be shorter, in which case it is
// zero-padded. dst and src may alias.
func (p *Plan) Forward(dst, src []complex128) error {
	if len(dst) != p.n {
		return fmt.Errorf("%w: dst %d, plan %d", ErrLengthMismatch, len(dst), p.n)
	}
	if len(src) > p.n {
		return fmt.Errorf("%w: src %d exceeds plan %d", ErrLengthMismatch, len(src), p.n)
	}

	cur := make([]complex128, p.n)
	copy(cur, src)
	permute(cur, p.rev)

	next := make([]complex128, p.n)
	for half := 1; half < p.n; half <<= 1 {
		size := half << 1
		stride := p.n / size
		for g := 0; g < p.n; g += size {
			for j := 0; j < half; j++ {
				low := cur[g+j]
				high := p.twiddles[j*stride] * cur[g+j+half]
				next[g+j] = low + high
				next[g+j+half] = low - high
			}
		}
		cur, next = next, cur
	}

	copy(dst, cur)
	return nil
}

// Inverse computes the real signal whose transform is src, into dst.
//
// The spectrum is reversed behind its DC bin and run through Forward, which
// yields L times the inverse; the real part is then scaled by 1/L. Both dst
// and src must have length Len().
func (p *Plan) Inverse(dst []float64, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: dst %d, src %d, plan %d", ErrLengthMismatch, len(dst), len(src), p.n)
	}

	reversed := make([]complex128, p.n)
	reversed[0] = src[0]
	for k := 1; k < p.n; k++ {
		reversed[k] = src[p.n-k]
	}
	if err := p.Forward(reversed, reversed); err != nil {
		return err
	}

	for i, v := range reversed {
		dst[i] = real(v)
	}
	vecmath.ScaleBlockInPlace(dst, 1/float64(p.n))
	return nil
}

// FFT returns the full spectrum of a real signal.
//
// The signal is zero-padded to the next power of two L >= len(signal); the
// result always has length L. An empty signal yields an empty spectrum.
func FFT(signal []float64) Spectrum {
	if len(signal) == 0 {
		return Spectrum{}
	}
	plan, err := NewPlan(core.NextPowerOf2(len(signal)))
	if err != nil {
		// NextPowerOf2 always yields a valid plan length.
		panic(err)
	}
	out := make(Spectrum, plan.Len())
	if err := plan.Forward(out, Promote(signal)); err != nil {
		panic(err)
	}
	return out
}

// IFFT returns the real signal of a full spectrum. The spectrum length must
// be a power of two; the output has the same length.
func IFFT(spectrum Spectrum) ([]float64, error) {
	if len(spectrum) == 0 {
		return []float64{}, nil
	}
	plan, err := NewPlan(len(spectrum))
	if err != nil {
		return nil, err
	}
	out := make([]float64, plan.Len())
	if err := plan.Inverse(out, spectrum); err != nil {
		return nil, err
	}
	return out, nil
}
