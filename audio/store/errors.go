package store

import "errors"

var (
	ErrUnsupportedFormat = errors.New("store: unsupported audio format")
	ErrInvalidFile       = errors.New("store: invalid audio file")
	ErrEmptyClip         = errors.New("store: clip has no samples")
	ErrInvalidClip       = errors.New("store: clip needs channels > 0 and sample rate > 0")
)
