package fourier

import "github.com/cwbudde/algo-bandpass/dsp/core"

// BitReversalTable returns rev where rev[i] is i with its low `bits` bits
// reversed. The table has 1<<bits entries and satisfies rev[rev[i]] == i.
//
// The table is filled incrementally: each block [2^(k-1), 2^k) is derived
// from the previous blocks by reflection, rev[2^k-1-i] = rev[2^k-1] - rev[i].
// Negative widths yield nil.
func BitReversalTable(bits int) []int {
	if bits < 0 {
		return nil
	}
	n := 1 << bits
	rev := make([]int, n)
	if bits < 2 {
		for i := range rev {
			rev[i] = i
		}
		return rev
	}

	rev[1] = n >> 1
	rev[2] = n >> 2
	rev[3] = rev[1] + rev[2]
	for k := 3; k <= bits; k++ {
		nk := 1<<k - 1
		rev[nk] = rev[1<<(k-1)-1] + 1<<(bits-k)
		for i := 1; i < 1<<(k-1); i++ {
			rev[nk-i] = rev[nk] - rev[i]
		}
	}
	return rev
}

// BitReversePermute reorders buf in place so that the element at index i
// moves to the bit-reversed index of i. Applying it twice restores buf.
func BitReversePermute(buf []complex128) error {
	n := len(buf)
	if n == 0 {
		return nil
	}
	if !core.IsPowerOf2(n) {
		return ErrNotPowerOfTwo
	}
	switch n {
	case 1, 2:
		return nil
	case 4:
		buf[1], buf[2] = buf[2], buf[1]
		return nil
	}
	permute(buf, BitReversalTable(core.Log2(n)))
	return nil
}

func permute(buf []complex128, rev []int) {
	for i, j := range rev {
		if j > i {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
