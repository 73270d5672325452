package channel

import (
	"errors"
	"fmt"
)

// ErrInvalidChannels is returned for channel counts < 1.
var ErrInvalidChannels = errors.New("channel: channel count must be > 0")

// Deinterleave splits an interleaved stream into channels.
//
// If len(samples) is not a multiple of channels, the trailing partial frame
// is distributed to the leading channels, which then hold one more sample.
func Deinterleave(samples []float64, channels int) ([][]float64, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	out := make([][]float64, channels)
	for c := range out {
		n := 0
		if c < len(samples) {
			n = (len(samples) - c + channels - 1) / channels
		}
		ch := make([]float64, n)
		for p := range ch {
			ch[p] = samples[p*channels+c]
		}
		out[c] = ch
	}
	return out, nil
}

// Interleave merges channels into one stream of len(chans)*maxLen samples,
// where maxLen is the longest channel. Positions past the end of a shorter
// channel are zero.
func Interleave(chans [][]float64) []float64 {
	maxLen := 0
	for _, ch := range chans {
		if len(ch) > maxLen {
			maxLen = len(ch)
		}
	}

	stride := len(chans)
	out := make([]float64, stride*maxLen)
	for c, ch := range chans {
		for p, v := range ch {
			out[p*stride+c] = v
		}
	}
	return out
}
