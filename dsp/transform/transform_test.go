package transform

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-bandpass/dsp/fourier"
	"github.com/cwbudde/algo-bandpass/internal/testutil"
)

func allBackends(t *testing.T) []Transformer {
	t.Helper()
	var out []Transformer
	for _, name := range Names() {
		tr, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) error: %v", name, err)
		}
		if tr.Name() != name {
			t.Fatalf("New(%q).Name()=%q", name, tr.Name())
		}
		out = append(out, tr)
	}
	return out
}

func TestNames(t *testing.T) {
	want := []string{NameAlgoFFT, NameGoDSP, NameGonum, NameRadix2}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names()=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names()=%v want=%v", got, want)
		}
	}
}

func TestNewDefaultAndUnknown(t *testing.T) {
	tr, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error: %v", err)
	}
	if tr.Name() != DefaultName {
		t.Fatalf("default backend=%q want=%q", tr.Name(), DefaultName)
	}

	if _, err := New("fftw"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err=%v want=%v", err, ErrUnknownBackend)
	}
}

func TestBackendsMatchRadix2(t *testing.T) {
	for _, tr := range allBackends(t) {
		for _, n := range []int{8, 100, 256, 1000, 4096} {
			signal := testutil.DeterministicNoise(int64(n), 1, n)
			want := fourier.FFT(signal)

			got, err := tr.Forward(signal)
			if err != nil {
				t.Fatalf("%s n=%d: Forward error: %v", tr.Name(), n, err)
			}
			testutil.RequireComplexSliceNearlyEqual(t, got, want, 1e-8)
		}
	}
}

func TestBackendsRoundTrip(t *testing.T) {
	for _, tr := range allBackends(t) {
		signal := testutil.DeterministicNoise(11, 1, 512)

		spec, err := tr.Forward(signal)
		if err != nil {
			t.Fatalf("%s: Forward error: %v", tr.Name(), err)
		}
		out, err := tr.Inverse(spec)
		if err != nil {
			t.Fatalf("%s: Inverse error: %v", tr.Name(), err)
		}
		testutil.RequireSliceNearlyEqual(t, out, signal, 1e-9)
	}
}

func TestBackendsEmpty(t *testing.T) {
	for _, tr := range allBackends(t) {
		spec, err := tr.Forward(nil)
		if err != nil || len(spec) != 0 {
			t.Fatalf("%s: Forward(nil)=%v, %v want empty", tr.Name(), spec, err)
		}
		out, err := tr.Inverse(fourier.Spectrum{})
		if err != nil || len(out) != 0 {
			t.Fatalf("%s: Inverse(empty)=%v, %v want empty", tr.Name(), out, err)
		}
	}
}

func TestBackendsRejectNonPowerOfTwoSpectrum(t *testing.T) {
	for _, tr := range allBackends(t) {
		_, err := tr.Inverse(make(fourier.Spectrum, 12))
		if !errors.Is(err, fourier.ErrNotPowerOfTwo) {
			t.Fatalf("%s: err=%v want=%v", tr.Name(), err, fourier.ErrNotPowerOfTwo)
		}
	}
}
