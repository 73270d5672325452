package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/cwbudde/algo-bandpass/dsp/core"
)

// ErrUnknownWaveform is returned by ParseWaveform for unregistered names.
var ErrUnknownWaveform = errors.New("signal: unknown waveform")

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSawtooth
	WaveTriangle
	WaveSquare
	WaveNoise
)

var waveformNames = [...]string{
	WaveSine:     "sine",
	WaveSawtooth: "sawtooth",
	WaveTriangle: "triangle",
	WaveSquare:   "square",
	WaveNoise:    "noise",
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform resolves a waveform by its lower-case name.
func ParseWaveform(name string) (Waveform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for w, n := range waveformNames {
		if n == name {
			return Waveform(w), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWaveform, name)
}

// Generator creates test signals from a shared configuration.
//
// Noise draws from the generator's *rand.Rand, which is owned by the caller
// and not safe for concurrent use. A Generator must therefore not be shared
// between goroutines while producing noise.
type Generator struct {
	cfg   core.ProcessorConfig
	rng   *rand.Rand
	phase float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds a private random source for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes noise generation draw from r.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithPhase offsets every oscillator by the given time in seconds.
func WithPhase(seconds float64) Option {
	return func(g *Generator) {
		g.phase = seconds
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg: core.ApplyProcessorOptions(coreOpts...),
		rng: rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Generate produces samples of waveform w.
func (g *Generator) Generate(w Waveform, freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check(w, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * g.value(w, freqHz, i)
	}
	return out, nil
}

// Interleaved produces frames of waveform w on every configured channel as
// one interleaved stream. Periodic waveforms carry the same value on all
// channels of a frame; noise is drawn per sample.
func (g *Generator) Interleaved(w Waveform, freqHz, amplitude float64, frames int) ([]float64, error) {
	if err := g.check(w, frames); err != nil {
		return nil, err
	}
	channels := g.cfg.Channels

	out := make([]float64, frames*channels)
	for p := 0; p < frames; p++ {
		v := amplitude * g.value(w, freqHz, p)
		for c := 0; c < channels; c++ {
			if w == WaveNoise && c > 0 {
				v = amplitude * g.noise()
			}
			out[p*channels+c] = v
		}
	}
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Generate(WaveSine, freqHz, amplitude, samples)
}

// Sawtooth generates a rising sawtooth in [-amplitude, amplitude).
func (g *Generator) Sawtooth(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Generate(WaveSawtooth, freqHz, amplitude, samples)
}

// Triangle generates a triangle wave starting at -amplitude.
func (g *Generator) Triangle(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Generate(WaveTriangle, freqHz, amplitude, samples)
}

// Square generates a 50% duty-cycle square wave.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Generate(WaveSquare, freqHz, amplitude, samples)
}

// WhiteNoise generates uniform white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	return g.Generate(WaveNoise, 0, amplitude, samples)
}

func (g *Generator) check(w Waveform, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", w, samples)
	}
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Errorf("%w: %s", ErrUnknownWaveform, w)
	}
	return nil
}

// value returns the unit-amplitude waveform at sample index i.
func (g *Generator) value(w Waveform, freqHz float64, i int) float64 {
	cycles := freqHz*float64(i)/g.cfg.SampleRate + freqHz*g.phase
	switch w {
	case WaveSawtooth:
		return (cycles - math.Floor(cycles) - 0.5) * 2
	case WaveTriangle:
		v := math.Abs(2 * (cycles - math.Floor(cycles+0.5)))
		return (v - 0.5) * 2
	case WaveSquare:
		if cycles-math.Floor(cycles) < 0.5 {
			return 1
		}
		return -1
	case WaveNoise:
		return g.noise()
	default:
		return math.Sin(2 * math.Pi * cycles)
	}
}

func (g *Generator) noise() float64 {
	return g.rng.Float64()*2 - 1
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
