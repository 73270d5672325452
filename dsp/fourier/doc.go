// Package fourier implements the forward and inverse Fourier transforms of
// the band-pass chain.
//
// Two transform pairs are provided and they are deliberately not unified
// behind one interface because their outputs have different shapes:
//
//   - [FFT] / [IFFT]: iterative radix-2 Cooley-Tukey over the full spectrum.
//     Input is zero-padded to the next power of two L, the spectrum has L
//     bins, and bin i maps to the signed frequency [FFTFreqs](L, rate)[i].
//     IFFT is the exact inverse.
//   - [DFT] / [IDFT] (and [Bounded]): a direct transform evaluated only at the
//     integer frequencies of an audible band (20..20000 Hz by default). The
//     spectrum length is fixed by the band, independent of the input length.
//     IDFT sums over that band only and is therefore a band-limited
//     reconstruction, not an exact inverse.
//
// All functions are pure: inputs are never modified and every call owns its
// working buffers.
package fourier
