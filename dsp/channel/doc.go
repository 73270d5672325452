// Package channel runs the band-pass chain over interleaved multi-channel
// sample streams.
//
// A stream is split into independent channels (sample p of channel c lives at
// interleaved index p*C+c), each channel goes through forward transform,
// frequency mapping, band filter and inverse transform, and the filtered
// channels are interleaved again. Channels share no state, so the pipeline
// can process them on several goroutines; see [WithWorkers].
package channel
