package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
)

// AlgoFFT runs transforms through algo-fft plans. A plan is created per call
// so the backend is safe for concurrent use.
type AlgoFFT struct{}

// Name implements Transformer.
func (AlgoFFT) Name() string { return NameAlgoFFT }

// Forward implements Transformer.
func (AlgoFFT) Forward(signal []float64) (fourier.Spectrum, error) {
	if len(signal) == 0 {
		return fourier.Spectrum{}, nil
	}
	in := padded(signal)
	if len(in) == 1 {
		return fourier.Spectrum{in[0]}, nil
	}

	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}
	out := make(fourier.Spectrum, len(in))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}
	return out, nil
}

// Inverse implements Transformer. algo-fft normalizes its inverse by 1/L.
func (AlgoFFT) Inverse(spectrum fourier.Spectrum) ([]float64, error) {
	if len(spectrum) == 0 {
		return []float64{}, nil
	}
	if err := checkSpectrum(spectrum); err != nil {
		return nil, err
	}
	if len(spectrum) == 1 {
		return []float64{real(spectrum[0])}, nil
	}

	plan, err := algofft.NewPlan64(len(spectrum))
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}
	tmp := make([]complex128, len(spectrum))
	if err := plan.Inverse(tmp, spectrum); err != nil {
		return nil, fmt.Errorf("transform: inverse FFT failed: %w", err)
	}
	return realParts(tmp), nil
}

func realParts(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = real(v)
	}
	return out
}
