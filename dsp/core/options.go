package core

// ProcessorConfig defines the shared settings of the analysis/synthesis chain.
//
// MinFrequency and MaxFrequency bound the naive transform's frequency domain
// in whole Hz. LowerBoundHz and UpperBoundHz are the inclusive pass window of
// the band filter.
type ProcessorConfig struct {
	SampleRate   float64
	Channels     int
	MinFrequency int
	MaxFrequency int
	LowerBoundHz float64
	UpperBoundHz float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// Default configuration values.
const (
	DefaultSampleRate   = 48000
	DefaultChannels     = 2
	DefaultMinFrequency = 20
	DefaultMaxFrequency = 20000
	DefaultLowerBoundHz = 400
	DefaultUpperBoundHz = 1000
)

// DefaultProcessorConfig returns the audible-band defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:   DefaultSampleRate,
		Channels:     DefaultChannels,
		MinFrequency: DefaultMinFrequency,
		MaxFrequency: DefaultMaxFrequency,
		LowerBoundHz: DefaultLowerBoundHz,
		UpperBoundHz: DefaultUpperBoundHz,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the interleaved channel count.
func WithChannels(channels int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// WithFrequencyBand sets the inclusive integer frequency domain of the
// bounded transform. Ranges with min < 0 or min > max are ignored.
func WithFrequencyBand(minHz, maxHz int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if minHz >= 0 && minHz <= maxHz {
			cfg.MinFrequency = minHz
			cfg.MaxFrequency = maxHz
		}
	}
}

// WithFilterWindow sets the inclusive pass window of the band filter.
// Windows with lower < 0 or lower > upper are ignored.
func WithFilterWindow(lowerHz, upperHz float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if lowerHz >= 0 && lowerHz <= upperHz {
			cfg.LowerBoundHz = lowerHz
			cfg.UpperBoundHz = upperHz
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BandSize returns the number of bins in the bounded frequency domain.
func (c ProcessorConfig) BandSize() int {
	if c.MaxFrequency < c.MinFrequency {
		return 0
	}
	return c.MaxFrequency - c.MinFrequency + 1
}
