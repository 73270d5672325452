package channel

import (
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-bandpass/dsp/filter/bandlimit"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
	"github.com/cwbudde/algo-bandpass/dsp/transform"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Pipeline filters interleaved streams to the configured pass window.
type Pipeline struct {
	cfg     core.ProcessorConfig
	window  bandlimit.Window
	backend transform.Transformer
	workers int
	trim    bool
	logger  logrus.FieldLogger
	metrics *Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBackend selects the full-spectrum transform. The default is the
// in-package radix-2 FFT.
func WithBackend(t transform.Transformer) Option {
	return func(p *Pipeline) {
		if t != nil {
			p.backend = t
		}
	}
}

// WithWorkers sets how many channels may be processed concurrently.
// The default of 1 processes channels one after another.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithTrimPadding truncates each filtered channel to its input length,
// dropping the tail added by power-of-two zero padding.
func WithTrimPadding() Option {
	return func(p *Pipeline) {
		p.trim = true
	}
}

// WithLogger sets the logger for per-channel debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithWindow overrides the pass window taken from the processor config.
// The window is validated when the pipeline is built.
func WithWindow(w bandlimit.Window) Option {
	return func(p *Pipeline) {
		p.window = w
	}
}

// WithMetrics records per-channel activity into m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// NewPipeline creates a pipeline from processor options.
func NewPipeline(opts ...core.ProcessorOption) (*Pipeline, error) {
	return NewPipelineWithOptions(opts)
}

// NewPipelineWithOptions creates a pipeline with processor options and
// pipeline-specific options.
func NewPipelineWithOptions(coreOpts []core.ProcessorOption, opts ...Option) (*Pipeline, error) {
	cfg := core.ApplyProcessorOptions(coreOpts...)

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	p := &Pipeline{
		cfg:     cfg,
		window:  bandlimit.Window{LowerHz: cfg.LowerBoundHz, UpperHz: cfg.UpperBoundHz},
		backend: transform.Radix2{},
		workers: 1,
		logger:  discard,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if err := p.window.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Config returns the pipeline processor configuration.
func (p *Pipeline) Config() core.ProcessorConfig {
	return p.cfg
}

// Window returns the pass window.
func (p *Pipeline) Window() bandlimit.Window {
	return p.window
}

// Backend returns the transform backend.
func (p *Pipeline) Backend() transform.Transformer {
	return p.backend
}

// Process filters an interleaved stream with the given channel count.
//
// Without WithTrimPadding every channel comes back with its power-of-two
// transform length, so the output holds channels*L samples where L belongs to
// the longest channel.
func (p *Pipeline) Process(samples []float64, channels int) ([]float64, error) {
	chans, err := Deinterleave(samples, channels)
	if err != nil {
		return nil, err
	}
	filtered, err := p.ProcessChannels(chans)
	if err != nil {
		return nil, err
	}
	return Interleave(filtered), nil
}

// ProcessChannels filters each channel independently.
func (p *Pipeline) ProcessChannels(chans [][]float64) ([][]float64, error) {
	out := make([][]float64, len(chans))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for c, ch := range chans {
		g.Go(func() error {
			res, err := p.processChannel(c, ch)
			if err != nil {
				return fmt.Errorf("channel %d: %w", c, err)
			}
			out[c] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"channels": len(chans),
		"backend":  p.backend.Name(),
		"workers":  p.workers,
	}).Debug("channels filtered")
	return out, nil
}

// ProcessChannel filters a single channel.
func (p *Pipeline) ProcessChannel(signal []float64) ([]float64, error) {
	return p.processChannel(0, signal)
}

func (p *Pipeline) processChannel(index int, signal []float64) ([]float64, error) {
	start := time.Now()

	spec, err := p.backend.Forward(signal)
	if err != nil {
		return nil, err
	}
	freqs := fourier.FFTFreqs(len(spec), p.cfg.SampleRate)
	filtered, err := p.window.Apply(spec, freqs)
	if err != nil {
		return nil, err
	}
	out, err := p.backend.Inverse(filtered)
	if err != nil {
		return nil, err
	}
	if p.trim && len(out) > len(signal) {
		out = out[:len(signal):len(signal)]
	}

	p.metrics.observe(p.backend.Name(), len(signal), time.Since(start))
	p.logger.WithFields(logrus.Fields{
		"channel":     index,
		"samples":     len(signal),
		"fft_size":    len(spec),
		"passed_bins": p.window.PassCount(freqs),
		"backend":     p.backend.Name(),
	}).Debug("channel filtered")
	return out, nil
}
