package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bandpass/dsp/filter/bandlimit"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
)

// DefaultRolloff is the energy fraction used for the rolloff frequency.
const DefaultRolloff = 0.85

// Shape holds spectral shape descriptors of the non-negative half of a
// spectrum.
type Shape struct {
	CentroidHz float64 // magnitude-weighted mean frequency
	SpreadHz   float64 // magnitude-weighted standard deviation around the centroid
	Flatness   float64 // geometric over arithmetic mean magnitude, DC excluded, 0..1
	RolloffHz  float64 // frequency below which the rolloff fraction of energy lies
	Energy     float64 // sum of squared magnitudes
}

// half returns magnitudes and frequencies of the bins with freq >= 0.
func half(spectrum fourier.Spectrum, freqs fourier.FrequencyMap) ([]float64, []float64, error) {
	if len(spectrum) != len(freqs) {
		return nil, nil, fmt.Errorf("spectrum: %d bins but %d frequencies: %w",
			len(spectrum), len(freqs), fourier.ErrLengthMismatch)
	}
	mag := Magnitude(spectrum)
	var hm, hf []float64
	for i, f := range freqs {
		if f >= 0 {
			hm = append(hm, mag[i])
			hf = append(hf, f)
		}
	}
	return hm, hf, nil
}

// Describe computes the shape of spectrum. rolloff is the energy fraction
// in (0, 1]; values outside use DefaultRolloff.
func Describe(spectrum fourier.Spectrum, freqs fourier.FrequencyMap, rolloff float64) (Shape, error) {
	mag, hz, err := half(spectrum, freqs)
	if err != nil {
		return Shape{}, err
	}
	if rolloff <= 0 || rolloff > 1 {
		rolloff = DefaultRolloff
	}

	var s Shape
	sum := 0.0
	for i, v := range mag {
		sum += v
		s.CentroidHz += hz[i] * v
		s.Energy += v * v
	}
	if sum == 0 {
		return Shape{}, nil
	}
	s.CentroidHz /= sum

	sq := 0.0
	for i, v := range mag {
		d := hz[i] - s.CentroidHz
		sq += d * d * v
	}
	s.SpreadHz = math.Sqrt(sq / sum)
	s.Flatness = flatness(mag)

	threshold := rolloff * s.Energy
	cum := 0.0
	s.RolloffHz = hz[len(hz)-1]
	for i, v := range mag {
		cum += v * v
		if cum >= threshold {
			s.RolloffHz = hz[i]
			break
		}
	}
	return s, nil
}

func flatness(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, v := range mag[1:] {
		if v <= 0 {
			// A zero bin makes the geometric mean zero.
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	n := float64(len(mag) - 1)
	return math.Exp(sumLog/n) / (sumLin / n)
}

// InBandRatio returns the fraction of non-negative-half energy whose bin
// frequency lies inside w. An all-zero spectrum yields 0.
func InBandRatio(spectrum fourier.Spectrum, freqs fourier.FrequencyMap, w bandlimit.Window) (float64, error) {
	mag, hz, err := half(spectrum, freqs)
	if err != nil {
		return 0, err
	}
	total, in := 0.0, 0.0
	for i, v := range mag {
		e := v * v
		total += e
		if w.Passes(hz[i]) {
			in += e
		}
	}
	if total == 0 {
		return 0, nil
	}
	return in / total, nil
}
