package fourier

import "math/cmplx"

// Spectrum is an ordered sequence of complex frequency bins.
//
// A full spectrum (from FFT) has power-of-two length and bin i maps to
// FFTFreqs(len, rate)[i]. A bounded spectrum (from DFT) has one bin per
// integer frequency of the transform's band.
type Spectrum []complex128

// FrequencyMap holds the signed frequency in Hz of each bin of a full
// spectrum.
type FrequencyMap []float64

// Len returns the bin count.
func (s Spectrum) Len() int { return len(s) }

// At returns the bin value at index i.
func (s Spectrum) At(i int) complex128 { return s[i] }

// Clone returns a copy of s.
func (s Spectrum) Clone() Spectrum {
	if s == nil {
		return nil
	}
	out := make(Spectrum, len(s))
	copy(out, s)
	return out
}

// Real returns the real part of every bin.
func (s Spectrum) Real() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = real(v)
	}
	return out
}

// Polar returns the complex value with magnitude r and phase theta.
func Polar(r, theta float64) complex128 {
	return cmplx.Rect(r, theta)
}

// Promote converts a real signal to complex samples with zero imaginary part.
func Promote(signal []float64) []complex128 {
	out := make([]complex128, len(signal))
	for i, v := range signal {
		out[i] = complex(v, 0)
	}
	return out
}
