package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Format identifies an audio container.
type Format int

const (
	FormatWAV Format = iota
	FormatMP3
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".mp3":
		return FormatMP3, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Clip is an interleaved multi-channel sample buffer.
type Clip struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// Frames returns the number of complete sample frames.
func (c *Clip) Frames() int {
	if c.Channels < 1 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate < 1 {
		return 0
	}
	return time.Duration(float64(c.Frames()) / float64(c.SampleRate) * float64(time.Second))
}

func (c *Clip) validate() error {
	if c.Channels < 1 || c.SampleRate < 1 {
		return fmt.Errorf("%w: channels=%d sampleRate=%d", ErrInvalidClip, c.Channels, c.SampleRate)
	}
	if len(c.Samples) == 0 {
		return ErrEmptyClip
	}
	return nil
}
