package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, float64(core.DefaultSampleRate), cfg.SampleRate)
	assert.Equal(t, core.DefaultChannels, cfg.Channels)
	assert.Equal(t, core.DefaultMinFrequency, cfg.BandMinHz)
	assert.Equal(t, core.DefaultMaxFrequency, cfg.BandMaxHz)
	assert.Equal(t, float64(core.DefaultLowerBoundHz), cfg.FilterLowerHz)
	assert.Equal(t, float64(core.DefaultUpperBoundHz), cfg.FilterUpperHz)
	assert.Equal(t, "radix2", cfg.Backend)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.TrimPadding)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadPrecedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bandpass.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
sample_rate: 44100
backend: gonum
filter:
  lower_hz: 250
  upper_hz: 4000
`), 0o600))

	t.Setenv("BANDPASS_FILTER_LOWER_HZ", "300")
	t.Setenv("BANDPASS_BACKEND", "algofft")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "", "")
	require.NoError(t, flags.Parse([]string{"--backend=godsp"}))

	v := New()
	require.NoError(t, v.BindPFlag(KeyBackend, flags.Lookup("backend")))

	cfg, err := Load(v, file)
	require.NoError(t, err)
	assert.Equal(t, 44100.0, cfg.SampleRate, "file beats default")
	assert.Equal(t, 300.0, cfg.FilterLowerHz, "env beats file")
	assert.Equal(t, 4000.0, cfg.FilterUpperHz)
	assert.Equal(t, "godsp", cfg.Backend, "flag beats env")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bandpass.env")
	require.NoError(t, os.WriteFile(path, []byte("BANDPASS_WORKERS=3\nBANDPASS_TRIM_PADDING=true\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("BANDPASS_WORKERS")
		os.Unsetenv("BANDPASS_TRIM_PADDING")
	})

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.TrimPadding)
}

func TestLoadDotEnvMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, LoadDotEnv(""))
	require.Error(t, LoadDotEnv("absent.env"))
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"BANDPASS_SAMPLE_RATE":     "0",
		"BANDPASS_CHANNELS":        "0",
		"BANDPASS_BAND_MIN_HZ":     "30000",
		"BANDPASS_FILTER_UPPER_HZ": "100",
		"BANDPASS_BACKEND":         "fftw",
		"BANDPASS_WORKERS":         "-2",
		"BANDPASS_LOG_LEVEL":       "loud",
		"BANDPASS_LOG_FORMAT":      "xml",
	}
	for env, value := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)
			_, err := Load(New(), "")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestProcessorOptions(t *testing.T) {
	cfg := &Config{
		SampleRate:    8000,
		Channels:      1,
		BandMinHz:     100,
		BandMaxHz:     200,
		FilterLowerHz: 120,
		FilterUpperHz: 180,
	}
	pc := core.ApplyProcessorOptions(cfg.ProcessorOptions()...)
	assert.Equal(t, core.ProcessorConfig{
		SampleRate:   8000,
		Channels:     1,
		MinFrequency: 100,
		MaxFrequency: 200,
		LowerBoundHz: 120,
		UpperBoundHz: 180,
	}, pc)
}
