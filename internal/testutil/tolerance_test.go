package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestReferenceDFTImpulse(t *testing.T) {
	x := make([]complex128, 8)
	x[0] = 1

	out := ReferenceDFT(x)
	for k, v := range out {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1", k, v)
		}
	}
}

func TestReferenceDFTShiftedImpulse(t *testing.T) {
	x := make([]complex128, 4)
	x[1] = 1

	want := []complex128{1, -1i, -1, 1i}
	RequireComplexSliceNearlyEqual(t, ReferenceDFT(x), want, 1e-12)
}

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, 1.0, 1.0+1e-13, 1e-12)
	RequireNearlyEqual(t, 48000, 48000.0001, 1e-8)
	RequireNearlyEqual(t, 0, 1e-13, 1e-12)
}
