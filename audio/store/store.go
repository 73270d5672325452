package store

import (
	"fmt"
	"io"
	"os"
)

// Load decodes the audio file at path. The format follows the extension.
func Load(path string) (*Clip, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	clip, err := LoadReader(f, format)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", path, err)
	}
	return clip, nil
}

// LoadReader decodes audio of the given format from r.
func LoadReader(r io.ReadSeeker, format Format) (*Clip, error) {
	switch format {
	case FormatWAV:
		return decodeWAV(r)
	case FormatMP3:
		return decodeMP3(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Save writes clip to path as 16-bit PCM WAV. The file is replaced if it
// exists; on encode failure the partial file is removed.
func Save(path string, clip *Clip) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format != FormatWAV {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}
	if err := clip.validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	if err := encodeWAV(f, clip); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("store: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", path, err)
	}
	return nil
}
