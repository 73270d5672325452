package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bandpass/dsp/core"
)

// Bounded is the direct transform restricted to the integer frequencies
// [MinFrequency, MaxFrequency] of a processor configuration.
//
// Bin i of a bounded spectrum holds frequency MinFrequency+i Hz. The cost of
// Forward and Inverse is O(N*B) for N samples and B bins.
type Bounded struct {
	sampleRate float64
	minFreq    int
	maxFreq    int
}

// NewBounded creates a bounded transform from cfg.
func NewBounded(cfg core.ProcessorConfig) (*Bounded, error) {
	if !(cfg.SampleRate > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if cfg.MinFrequency < 0 || cfg.MaxFrequency < cfg.MinFrequency {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBand, cfg.MinFrequency, cfg.MaxFrequency)
	}
	return &Bounded{
		sampleRate: cfg.SampleRate,
		minFreq:    cfg.MinFrequency,
		maxFreq:    cfg.MaxFrequency,
	}, nil
}

// Bins returns the fixed spectrum length B = max-min+1.
func (b *Bounded) Bins() int { return b.maxFreq - b.minFreq + 1 }

// SampleRate returns the sample rate the transform was built for.
func (b *Bounded) SampleRate() float64 { return b.sampleRate }

// Freqs returns the frequency in Hz of each bin.
func (b *Bounded) Freqs() []float64 {
	out := make([]float64, b.Bins())
	for i := range out {
		out[i] = float64(b.minFreq + i)
	}
	return out
}

// Forward evaluates sum_n signal[n]*exp(-2*pi*i*k*n/rate) for every k in the
// band. The result always has Bins() entries.
func (b *Bounded) Forward(signal []float64) Spectrum {
	out := make(Spectrum, b.Bins())
	for k := b.minFreq; k <= b.maxFreq; k++ {
		var sum complex128
		for n, x := range signal {
			if x == 0 {
				continue
			}
			sum += complex(x, 0) * Polar(1, -b.angle(k, n))
		}
		out[k-b.minFreq] = sum
	}
	return out
}

// Inverse reconstructs n samples from a bounded spectrum.
//
// Each sample is the real part of sum_k spectrum[k-min]*exp(+2*pi*i*k*n/rate)
// over the band, divided by n. Only the band's positive frequencies are
// summed, so this is a band-limited reconstruction rather than an exact
// inverse.
func (b *Bounded) Inverse(spectrum Spectrum, n int) ([]float64, error) {
	if len(spectrum) != b.Bins() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSpectrumLength, len(spectrum), b.Bins())
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	out := make([]float64, n)
	for i := range out {
		var sum complex128
		for k := b.minFreq; k <= b.maxFreq; k++ {
			sum += spectrum[k-b.minFreq] * Polar(1, b.angle(k, i))
		}
		out[i] = real(sum) / float64(n)
	}
	return out, nil
}

// angle returns 2*pi*k*n/rate reduced to one turn.
func (b *Bounded) angle(k, n int) float64 {
	turns := math.Mod(float64(k)*float64(n), b.sampleRate) / b.sampleRate
	return 2 * math.Pi * turns
}

func defaultBounded(sampleRate float64) (*Bounded, error) {
	return NewBounded(core.ApplyProcessorOptions(func(cfg *core.ProcessorConfig) {
		cfg.SampleRate = sampleRate
	}))
}

// DFT computes the bounded spectrum of signal over the default audible band
// (20..20000 Hz).
func DFT(signal []float64, sampleRate float64) (Spectrum, error) {
	b, err := defaultBounded(sampleRate)
	if err != nil {
		return nil, err
	}
	return b.Forward(signal), nil
}

// IDFT reconstructs n samples from a bounded spectrum over the default
// audible band. See [Bounded.Inverse].
func IDFT(spectrum Spectrum, n int, sampleRate float64) ([]float64, error) {
	b, err := defaultBounded(sampleRate)
	if err != nil {
		return nil, err
	}
	return b.Inverse(spectrum, n)
}

// DFTFreqs returns the frequencies of the default audible band, 20..20000.
func DFTFreqs() []float64 {
	b := &Bounded{
		sampleRate: core.DefaultSampleRate,
		minFreq:    core.DefaultMinFrequency,
		maxFreq:    core.DefaultMaxFrequency,
	}
	return b.Freqs()
}
