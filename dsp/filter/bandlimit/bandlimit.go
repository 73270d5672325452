// Package bandlimit zeroes spectrum bins outside an inclusive frequency
// window.
//
// The filter is a brick wall: bins are either passed unchanged or replaced
// with zero, with no windowing or normalization. Decisions use the absolute
// bin frequency, so a positive bin and its negative mirror are always kept or
// dropped together and a conjugate-symmetric spectrum stays symmetric.
package bandlimit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bandpass/dsp/fourier"
)

// Errors returned by the filter.
var (
	ErrLengthMismatch = errors.New("bandlimit: spectrum and frequency map length mismatch")
	ErrInvalidWindow  = errors.New("bandlimit: invalid frequency window")
)

// Window is an inclusive pass band [LowerHz, UpperHz].
type Window struct {
	LowerHz float64
	UpperHz float64
}

// NewWindow validates and returns a pass window.
func NewWindow(lowerHz, upperHz float64) (Window, error) {
	w := Window{LowerHz: lowerHz, UpperHz: upperHz}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate reports whether the window bounds are usable.
func (w Window) Validate() error {
	if math.IsNaN(w.LowerHz) || math.IsNaN(w.UpperHz) || w.LowerHz > w.UpperHz {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidWindow, w.LowerHz, w.UpperHz)
	}
	return nil
}

// Passes reports whether a bin at signed frequency freqHz lies in the window.
func (w Window) Passes(freqHz float64) bool {
	f := math.Abs(freqHz)
	return !(f < w.LowerHz || f > w.UpperHz)
}

// Apply returns a copy of spectrum with every bin outside the window zeroed.
// freqs must give the frequency of each bin and have the spectrum's length.
func (w Window) Apply(spectrum fourier.Spectrum, freqs fourier.FrequencyMap) (fourier.Spectrum, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(freqs) != len(spectrum) {
		return nil, fmt.Errorf("%w: spectrum %d, freqs %d", ErrLengthMismatch, len(spectrum), len(freqs))
	}

	out := make(fourier.Spectrum, len(spectrum))
	for i, v := range spectrum {
		if w.Passes(freqs[i]) {
			out[i] = v
		}
	}
	return out, nil
}

// PassCount returns how many bins of freqs fall inside the window.
func (w Window) PassCount(freqs fourier.FrequencyMap) int {
	n := 0
	for _, f := range freqs {
		if w.Passes(f) {
			n++
		}
	}
	return n
}

// Filter zeroes every bin of spectrum whose |freqs[i]| is below lowerHz or
// above upperHz and returns the result as a new spectrum of the same length.
func Filter(spectrum fourier.Spectrum, freqs fourier.FrequencyMap, lowerHz, upperHz float64) (fourier.Spectrum, error) {
	return Window{LowerHz: lowerHz, UpperHz: upperHz}.Apply(spectrum, freqs)
}
