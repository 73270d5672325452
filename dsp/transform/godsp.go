package transform

import (
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
	dspfft "github.com/mjibson/go-dsp/fft"
)

// GoDSP runs transforms through mjibson/go-dsp.
type GoDSP struct{}

// Name implements Transformer.
func (GoDSP) Name() string { return NameGoDSP }

// Forward implements Transformer.
func (GoDSP) Forward(signal []float64) (fourier.Spectrum, error) {
	if len(signal) == 0 {
		return fourier.Spectrum{}, nil
	}
	return fourier.Spectrum(dspfft.FFT(padded(signal))), nil
}

// Inverse implements Transformer. go-dsp normalizes its inverse by 1/L.
func (GoDSP) Inverse(spectrum fourier.Spectrum) ([]float64, error) {
	if len(spectrum) == 0 {
		return []float64{}, nil
	}
	if err := checkSpectrum(spectrum); err != nil {
		return nil, err
	}
	return realParts(dspfft.IFFT(spectrum)), nil
}
