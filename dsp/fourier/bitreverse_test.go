package fourier

import (
	"errors"
	"math/bits"
	"testing"
)

func TestBitReversalTableWidth3(t *testing.T) {
	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	got := BitReversalTable(3)
	if len(got) != len(want) {
		t.Fatalf("len=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rev[%d]=%d want=%d", i, got[i], want[i])
		}
	}
}

func TestBitReversalTableMatchesBitsReverse(t *testing.T) {
	for width := 0; width <= 14; width++ {
		rev := BitReversalTable(width)
		if len(rev) != 1<<width {
			t.Fatalf("width %d: len=%d want=%d", width, len(rev), 1<<width)
		}
		for i, r := range rev {
			want := 0
			if width > 0 {
				want = int(bits.Reverse32(uint32(i)) >> (32 - width))
			}
			if r != want {
				t.Fatalf("width %d: rev[%d]=%d want=%d", width, i, r, want)
			}
			if rev[r] != i {
				t.Fatalf("width %d: rev[rev[%d]]=%d, not an involution", width, i, rev[r])
			}
		}
	}
}

func TestBitReversalTableNegativeWidth(t *testing.T) {
	if rev := BitReversalTable(-1); rev != nil {
		t.Fatalf("expected nil table, got %v", rev)
	}
}

func TestBitReversePermuteInvolution(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 256, 4096} {
		buf := make([]complex128, n)
		for i := range buf {
			buf[i] = complex(float64(i), -float64(i))
		}
		orig := append([]complex128(nil), buf...)

		if err := BitReversePermute(buf); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if err := BitReversePermute(buf); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for i := range buf {
			if buf[i] != orig[i] {
				t.Fatalf("n=%d: index %d = %v after double permute, want %v", n, i, buf[i], orig[i])
			}
		}
	}
}

func TestBitReversePermuteLength4(t *testing.T) {
	buf := []complex128{0, 1, 2, 3}
	if err := BitReversePermute(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []complex128{0, 2, 1, 3}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf=%v want=%v", buf, want)
		}
	}
}

func TestBitReversePermuteMatchesTable(t *testing.T) {
	buf := make([]complex128, 32)
	for i := range buf {
		buf[i] = complex(float64(i), 0)
	}
	if err := BitReversePermute(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rev := BitReversalTable(5)
	for i := range buf {
		if int(real(buf[i])) != rev[i] {
			t.Fatalf("buf[%d]=%v want=%d", i, buf[i], rev[i])
		}
	}
}

func TestBitReversePermuteRejectsNonPowerOfTwo(t *testing.T) {
	err := BitReversePermute(make([]complex128, 6))
	if !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatalf("err=%v want=%v", err, ErrNotPowerOfTwo)
	}
	if err := BitReversePermute(nil); err != nil {
		t.Fatalf("empty buffer: unexpected error %v", err)
	}
}
