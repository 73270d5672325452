package store

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/hajimehoshi/go-mp3"
)

// mp3Channels is fixed by the decoder, which always yields 16-bit
// little-endian stereo.
const mp3Channels = 2

func decodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		samples[i] = core.Clamp(float64(v)/pcm16Scale, -1, 1)
	}

	return &Clip{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
		Channels:   mp3Channels,
	}, nil
}
