// Command bandpass band-limits audio files in the frequency domain.
//
// Usage:
//
//	bandpass [global flags] <command> [flags] [args]
//
// Examples:
//
//	bandpass filter --lower-hz 300 --upper-hz 3400 in.wav out.wav
//	bandpass spectrum --window hann --peaks 5 in.mp3
//	bandpass generate --waveform square --freq 440 --duration 2s tone.wav
//	bandpass freqs --size 16 --sample-rate 8000
//	bandpass backends
//
// Every global flag can also be set in a YAML file (--config), in a .env file
// or through BANDPASS_* environment variables, e.g. BANDPASS_FILTER_LOWER_HZ.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
