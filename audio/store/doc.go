// Package store loads and saves multi-channel audio clips.
//
// Clips hold interleaved float64 samples nominally in [-1, 1]. WAV files are
// decoded at any integer PCM bit depth and always written as 16-bit PCM, with
// samples clamped to [-1, 1] and scaled by 32767. MP3 files can be loaded but
// not written.
package store
