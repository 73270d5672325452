package bandlimit_test

import (
	"fmt"

	"github.com/cwbudde/algo-bandpass/dsp/filter/bandlimit"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
)

func ExampleFilter() {
	spec := fourier.Spectrum{1, 1, 1, 1, 1, 1, 1, 1}
	freqs := fourier.FFTFreqs(len(spec), 8000)

	out, _ := bandlimit.Filter(spec, freqs, 1000, 2000)
	for i, v := range out {
		fmt.Printf("%v Hz: %v\n", freqs[i], real(v))
	}

	// Output:
	// 0 Hz: 0
	// 1000 Hz: 1
	// 2000 Hz: 1
	// 3000 Hz: 0
	// 4000 Hz: 0
	// -3000 Hz: 0
	// -2000 Hz: 1
	// -1000 Hz: 1
}
