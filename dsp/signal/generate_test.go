package signal

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-bandpass/internal/testutil"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestPeriodicShapes(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	tests := []struct {
		name string
		w    Waveform
		want []float64
	}{
		{name: "sawtooth", w: WaveSawtooth, want: []float64{-1, -0.5, 0, 0.5, -1}},
		{name: "triangle", w: WaveTriangle, want: []float64{-1, 0, 1, 0, -1}},
		{name: "square", w: WaveSquare, want: []float64{1, 1, -1, -1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Generate(tt.w, 250, 1, len(tt.want))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Fatalf("out[%d]=%v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAmplitudeScaling(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	out, err := g.Square(250, 0.25, 4)
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	for i, v := range out {
		if math.Abs(v) != 0.25 {
			t.Fatalf("out[%d]=%v, want magnitude 0.25", i, v)
		}
	}
}

func TestPhaseOffset(t *testing.T) {
	g := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(1000)}, WithPhase(0.001))
	out, err := g.Sawtooth(250, 1, 1)
	if err != nil {
		t.Fatalf("Sawtooth() error = %v", err)
	}
	if math.Abs(out[0]+0.5) > 1e-12 {
		t.Fatalf("out[0]=%v, want -0.5", out[0])
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithRand(rand.New(rand.NewSource(42))))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(n1[i]) > 1 {
			t.Fatalf("noise[%d]=%v out of range", i, n1[i])
		}
	}
}

func TestWhiteNoiseAdvancesSource(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(7))
	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			return
		}
	}
	t.Fatal("expected successive calls to produce different noise")
}

func TestInterleaved(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000), core.WithChannels(3))
	out, err := g.Interleaved(WaveSquare, 250, 1, 4)
	if err != nil {
		t.Fatalf("Interleaved() error = %v", err)
	}
	if len(out) != 12 {
		t.Fatalf("len = %d, want 12", len(out))
	}
	want := []float64{1, 1, -1, -1}
	for p := range want {
		for c := 0; c < 3; c++ {
			if out[p*3+c] != want[p] {
				t.Fatalf("frame %d channel %d = %v, want %v", p, c, out[p*3+c], want[p])
			}
		}
	}

	noise, err := g.Interleaved(WaveNoise, 0, 1, 2)
	if err != nil {
		t.Fatalf("Interleaved(noise) error = %v", err)
	}
	if noise[0] == noise[1] {
		t.Fatalf("expected independent noise per channel: %v", noise)
	}
}

func TestGenerateErrors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative noise amplitude")
	}
	if _, err := g.Generate(Waveform(99), 1000, 1, 8); !errors.Is(err, ErrUnknownWaveform) {
		t.Fatalf("expected ErrUnknownWaveform, got %v", err)
	}
}

func TestInvalidConfigKeepsDefaults(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN()} {
		g := NewGenerator(core.WithSampleRate(rate))
		if got := g.Config().SampleRate; got != core.DefaultSampleRate {
			t.Fatalf("WithSampleRate(%v): SampleRate = %v, want %v", rate, got, core.DefaultSampleRate)
		}
		s, err := g.Sine(1000, 1, 8)
		if err != nil {
			t.Fatalf("WithSampleRate(%v): Sine() error = %v", rate, err)
		}
		testutil.RequireFinite(t, s)
	}

	g := NewGenerator(core.WithChannels(0))
	out, err := g.Interleaved(WaveSine, 1000, 1, 4)
	if err != nil {
		t.Fatalf("Interleaved() error = %v", err)
	}
	if len(out) != 4*core.DefaultChannels {
		t.Fatalf("len = %d, want %d", len(out), 4*core.DefaultChannels)
	}
}

func TestParseWaveform(t *testing.T) {
	for _, w := range []Waveform{WaveSine, WaveSawtooth, WaveTriangle, WaveSquare, WaveNoise} {
		got, err := ParseWaveform(w.String())
		if err != nil {
			t.Fatalf("ParseWaveform(%q) error = %v", w, err)
		}
		if got != w {
			t.Fatalf("ParseWaveform(%q)=%v, want %v", w, got, w)
		}
	}
	if got, err := ParseWaveform(" Square "); err != nil || got != WaveSquare {
		t.Fatalf("ParseWaveform(\" Square \")=%v, %v", got, err)
	}
	if _, err := ParseWaveform("impulse"); !errors.Is(err, ErrUnknownWaveform) {
		t.Fatalf("expected ErrUnknownWaveform, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}

	silent, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if silent[0] != 0 || silent[1] != 0 {
		t.Fatalf("silent = %v, want zeros", silent)
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}
