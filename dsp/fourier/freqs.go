package fourier

// FFTFreqs returns the signed frequency in Hz of each bin of an n-point full
// spectrum.
//
// Bins 0..n/2 run from DC up to Nyquist; bins above n/2 are the negative
// mirror frequencies (i-n)*rate/n. A real band of interest therefore occupies
// two bins, k and n-k.
func FFTFreqs(n int, sampleRate float64) FrequencyMap {
	if n <= 0 {
		return FrequencyMap{}
	}
	out := make(FrequencyMap, n)
	step := sampleRate / float64(n)
	for i := range out {
		if i <= n/2 {
			out[i] = float64(i) * step
		} else {
			out[i] = float64(i-n) * step
		}
	}
	return out
}
