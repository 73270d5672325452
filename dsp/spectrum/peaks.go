package spectrum

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
)

// Peak is a local magnitude maximum of a spectrum.
type Peak struct {
	Bin         int
	FrequencyHz float64
	Magnitude   float64
	DB          float64
	Phase       float64
}

// Peaks returns up to limit local maxima among the bins with non-negative
// frequency, strongest first. Ties keep bin order. A limit <= 0 returns every
// peak. Bins with zero magnitude are never peaks.
//
// Magnitudes are normalized by the spectrum length, so a bin-aligned real
// tone of amplitude A reports A/2.
func Peaks(spectrum fourier.Spectrum, freqs fourier.FrequencyMap, limit int) ([]Peak, error) {
	if len(spectrum) != len(freqs) {
		return nil, fmt.Errorf("spectrum: %d bins but %d frequencies: %w",
			len(spectrum), len(freqs), fourier.ErrLengthMismatch)
	}
	if len(spectrum) == 0 {
		return nil, nil
	}

	mag := Magnitude(spectrum)
	phase := Phase(spectrum)
	scale := 1 / float64(len(spectrum))

	half := make([]int, 0, len(spectrum)/2+1)
	for i, f := range freqs {
		if f >= 0 {
			half = append(half, i)
		}
	}

	var peaks []Peak
	for j, i := range half {
		m := mag[i]
		if m == 0 {
			continue
		}
		if j > 0 && m < mag[half[j-1]] {
			continue
		}
		if j+1 < len(half) && m <= mag[half[j+1]] {
			continue
		}
		norm := m * scale
		peaks = append(peaks, Peak{
			Bin:         i,
			FrequencyHz: freqs[i],
			Magnitude:   norm,
			DB:          core.LinearToDB(norm),
			Phase:       phase[i],
		})
	}

	sort.SliceStable(peaks, func(a, b int) bool {
		return peaks[a].Magnitude > peaks[b].Magnitude
	})
	if limit > 0 && len(peaks) > limit {
		peaks = peaks[:limit]
	}
	return peaks, nil
}
