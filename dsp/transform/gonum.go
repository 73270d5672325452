package transform

import (
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
	"github.com/cwbudde/algo-vecmath"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"
)

// Gonum runs transforms through gonum's complex FFT.
type Gonum struct{}

// Name implements Transformer.
func (Gonum) Name() string { return NameGonum }

// Forward implements Transformer.
func (Gonum) Forward(signal []float64) (fourier.Spectrum, error) {
	if len(signal) == 0 {
		return fourier.Spectrum{}, nil
	}
	in := padded(signal)
	fft := gonumfourier.NewCmplxFFT(len(in))
	return fourier.Spectrum(fft.Coefficients(nil, in)), nil
}

// Inverse implements Transformer. gonum's Sequence is unnormalized, so the
// result is scaled by 1/L here.
func (Gonum) Inverse(spectrum fourier.Spectrum) ([]float64, error) {
	if len(spectrum) == 0 {
		return []float64{}, nil
	}
	if err := checkSpectrum(spectrum); err != nil {
		return nil, err
	}
	fft := gonumfourier.NewCmplxFFT(len(spectrum))
	out := realParts(fft.Sequence(nil, spectrum))
	vecmath.ScaleBlockInPlace(out, 1/float64(len(spectrum)))
	return out, nil
}
