// Package config loads command-line configuration from defaults, an optional
// YAML file, a .env file, BANDPASS_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-bandpass/dsp/transform"
	"github.com/cwbudde/algo-bandpass/internal/logging"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key: filter.lower_hz is read
// from BANDPASS_FILTER_LOWER_HZ.
const EnvPrefix = "BANDPASS"

// DefaultDotEnv is loaded when present; a missing file is not an error.
const DefaultDotEnv = ".env"

// Configuration keys.
const (
	KeySampleRate      = "sample_rate"
	KeyChannels        = "channels"
	KeyBandMinHz       = "band.min_hz"
	KeyBandMaxHz       = "band.max_hz"
	KeyFilterLowerHz   = "filter.lower_hz"
	KeyFilterUpperHz   = "filter.upper_hz"
	KeyBackend         = "backend"
	KeyWorkers         = "workers"
	KeyTrimPadding     = "trim_padding"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyMetricsTextfile = "metrics.textfile"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved command-line configuration.
type Config struct {
	SampleRate      float64
	Channels        int
	BandMinHz       int
	BandMaxHz       int
	FilterLowerHz   float64
	FilterUpperHz   float64
	Backend         string
	Workers         int
	TrimPadding     bool
	LogLevel        string
	LogFormat       string
	MetricsTextfile string
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySampleRate, float64(core.DefaultSampleRate))
	v.SetDefault(KeyChannels, core.DefaultChannels)
	v.SetDefault(KeyBandMinHz, core.DefaultMinFrequency)
	v.SetDefault(KeyBandMaxHz, core.DefaultMaxFrequency)
	v.SetDefault(KeyFilterLowerHz, core.DefaultLowerBoundHz)
	v.SetDefault(KeyFilterUpperHz, core.DefaultUpperBoundHz)
	v.SetDefault(KeyBackend, transform.DefaultName)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyTrimPadding, false)
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(KeyLogFormat, logging.FormatText)
	v.SetDefault(KeyMetricsTextfile, "")
}

// LoadDotEnv loads environment variables from path without overriding
// variables that are already set. An empty path means DefaultDotEnv, which
// may be missing; an explicit path must exist.
func LoadDotEnv(path string) error {
	optional := path == ""
	if optional {
		path = DefaultDotEnv
	}
	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load reads the optional config file into v and resolves every key.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := &Config{
		SampleRate:      v.GetFloat64(KeySampleRate),
		Channels:        v.GetInt(KeyChannels),
		BandMinHz:       v.GetInt(KeyBandMinHz),
		BandMaxHz:       v.GetInt(KeyBandMaxHz),
		FilterLowerHz:   v.GetFloat64(KeyFilterLowerHz),
		FilterUpperHz:   v.GetFloat64(KeyFilterUpperHz),
		Backend:         v.GetString(KeyBackend),
		Workers:         v.GetInt(KeyWorkers),
		TrimPadding:     v.GetBool(KeyTrimPadding),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		MetricsTextfile: v.GetString(KeyMetricsTextfile),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	var errs []error
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("%s must be > 0: %v", KeySampleRate, c.SampleRate))
	}
	if c.Channels < 1 {
		errs = append(errs, fmt.Errorf("%s must be > 0: %d", KeyChannels, c.Channels))
	}
	if c.BandMinHz < 0 || c.BandMinHz > c.BandMaxHz {
		errs = append(errs, fmt.Errorf("band must satisfy 0 <= %s <= %s: [%d, %d]",
			KeyBandMinHz, KeyBandMaxHz, c.BandMinHz, c.BandMaxHz))
	}
	if c.FilterLowerHz < 0 || c.FilterLowerHz > c.FilterUpperHz {
		errs = append(errs, fmt.Errorf("filter window must satisfy 0 <= %s <= %s: [%v, %v]",
			KeyFilterLowerHz, KeyFilterUpperHz, c.FilterLowerHz, c.FilterUpperHz))
	}
	if _, err := transform.New(c.Backend); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%s must be > 0: %d", KeyWorkers, c.Workers))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.LogFormat); f != logging.FormatText && f != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("%s must be %q or %q: %q", KeyLogFormat, logging.FormatText, logging.FormatJSON, c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ProcessorOptions converts the configuration into processor options.
func (c *Config) ProcessorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(c.SampleRate),
		core.WithChannels(c.Channels),
		core.WithFrequencyBand(c.BandMinHz, c.BandMaxHz),
		core.WithFilterWindow(c.FilterLowerHz, c.FilterUpperHz),
	}
}

// LoggingOptions converts the configuration into logger options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, Format: c.LogFormat}
}
