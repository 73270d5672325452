// Package transform exposes interchangeable full-spectrum FFT backends
// behind one contract.
//
// Every backend zero-pads its input to the next power of two L, returns the
// unnormalized L-bin spectrum in natural order, and inverts an L-bin spectrum
// to L real samples divided by L. The channel pipeline only depends on
// [Transformer], so backends can be swapped by name.
//
// The bounded transform in package fourier is intentionally not a backend:
// its spectrum shape differs from the full spectrum.
package transform

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
)

// Backend names.
const (
	NameRadix2  = "radix2"
	NameAlgoFFT = "algofft"
	NameGonum   = "gonum"
	NameGoDSP   = "godsp"
)

// DefaultName is the backend used when none is configured.
const DefaultName = NameRadix2

// ErrUnknownBackend is returned by New for unregistered names.
var ErrUnknownBackend = errors.New("transform: unknown backend")

// Transformer converts between real signals and full spectra.
type Transformer interface {
	// Name returns the registry name of the backend.
	Name() string
	// Forward returns the full spectrum of signal, zero-padded to a power of two.
	Forward(signal []float64) (fourier.Spectrum, error)
	// Inverse returns the real signal of a power-of-two length spectrum.
	Inverse(spectrum fourier.Spectrum) ([]float64, error)
}

var registry = map[string]func() Transformer{
	NameRadix2:  func() Transformer { return Radix2{} },
	NameAlgoFFT: func() Transformer { return AlgoFFT{} },
	NameGonum:   func() Transformer { return Gonum{} },
	NameGoDSP:   func() Transformer { return GoDSP{} },
}

// New returns the backend registered under name. An empty name selects
// DefaultName.
func New(name string) (Transformer, error) {
	if name == "" {
		name = DefaultName
	}
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return ctor(), nil
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// padded promotes signal to a zero-padded complex buffer of power-of-two
// length.
func padded(signal []float64) []complex128 {
	buf := make([]complex128, core.NextPowerOf2(len(signal)))
	for i, v := range signal {
		buf[i] = complex(v, 0)
	}
	return buf
}

func checkSpectrum(spectrum fourier.Spectrum) error {
	if !core.IsPowerOf2(len(spectrum)) {
		return fmt.Errorf("%w: %d", fourier.ErrNotPowerOfTwo, len(spectrum))
	}
	return nil
}

// Radix2 is the in-package iterative radix-2 transform.
type Radix2 struct{}

// Name implements Transformer.
func (Radix2) Name() string { return NameRadix2 }

// Forward implements Transformer.
func (Radix2) Forward(signal []float64) (fourier.Spectrum, error) {
	return fourier.FFT(signal), nil
}

// Inverse implements Transformer.
func (Radix2) Inverse(spectrum fourier.Spectrum) ([]float64, error) {
	return fourier.IFFT(spectrum)
}
