package fourier

import "errors"

// Errors returned by transform functions.
var (
	ErrNotPowerOfTwo     = errors.New("fourier: length is not a power of two")
	ErrLengthMismatch    = errors.New("fourier: buffer length mismatch")
	ErrInvalidSampleRate = errors.New("fourier: sample rate must be > 0")
	ErrInvalidBand       = errors.New("fourier: invalid frequency band")
	ErrSpectrumLength    = errors.New("fourier: spectrum length does not match band")
	ErrNegativeLength    = errors.New("fourier: output length must be >= 0")
)
