package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}
	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=%f", mag[1], math.Sqrt2)
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}
	if pow[2] != 0 {
		t.Fatalf("Power[2]=%f want=0", pow[2])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
	if math.Abs(phase[1]+3*math.Pi/4) > 1e-12 {
		t.Fatalf("Phase[1]=%f want=%f", phase[1], -3*math.Pi/4)
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestMagnitudeLarge(t *testing.T) {
	// Long enough to exercise the vectorized kernels and pool reuse.
	for range 2 {
		in := make([]complex128, 1000)
		for i := range in {
			in[i] = complex(float64(i), -float64(i))
		}
		mag := Magnitude(in)
		for i, v := range mag {
			want := float64(i) * math.Sqrt2
			if math.Abs(v-want) > 1e-9 {
				t.Fatalf("Magnitude[%d]=%f want=%f", i, v, want)
			}
		}
	}
}
