package store

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	saveBitDepth = 16
	pcm16Scale   = 32767
)

func decodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	depth := int(dec.BitDepth)
	if depth < 8 || depth > 32 {
		return nil, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, depth)
	}
	scale := float64(int64(1)<<(depth-1) - 1)
	offset := 0
	if depth == 8 {
		// 8-bit WAV samples are unsigned.
		offset = 128
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = core.Clamp(float64(v-offset)/scale, -1, 1)
	}

	return &Clip{
		Samples:    samples,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}, nil
}

func encodeWAV(w io.WriteSeeker, clip *Clip) error {
	data := make([]int, len(clip.Samples))
	for i, v := range clip.Samples {
		data[i] = int(math.Round(core.Clamp(v, -1, 1) * pcm16Scale))
	}

	enc := wav.NewEncoder(w, clip.SampleRate, saveBitDepth, clip.Channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: clip.Channels,
			SampleRate:  clip.SampleRate,
		},
		Data:           data,
		SourceBitDepth: saveBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
