package main

import (
	"github.com/cwbudde/algo-bandpass/audio/store"
	"github.com/cwbudde/algo-bandpass/dsp/channel"
	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-bandpass/dsp/transform"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newFilterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <input> <output.wav>",
		Short: "Keep only the content between --lower-hz and --upper-hz",
		Long: "Decode input (WAV or MP3), run every channel through forward transform,\n" +
			"brick-wall band filter and inverse transform, and write 16-bit PCM WAV.\n" +
			"Without --trim-padding every channel keeps its power-of-two transform length.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFilter(args[0], args[1])
		},
	}
}

func (a *app) pipeline(sampleRate int) (*channel.Pipeline, error) {
	backend, err := transform.New(a.cfg.Backend)
	if err != nil {
		return nil, err
	}

	coreOpts := append(a.cfg.ProcessorOptions(), core.WithSampleRate(float64(sampleRate)))
	opts := []channel.Option{
		channel.WithBackend(backend),
		channel.WithWorkers(a.cfg.Workers),
		channel.WithLogger(a.log),
		channel.WithMetrics(a.metrics),
	}
	if a.cfg.TrimPadding {
		opts = append(opts, channel.WithTrimPadding())
	}
	return channel.NewPipelineWithOptions(coreOpts, opts...)
}

func (a *app) runFilter(in, out string) error {
	clip, err := store.Load(in)
	if err != nil {
		return err
	}
	log := a.log.WithFields(logrus.Fields{
		"path":     in,
		"channels": clip.Channels,
		"samples":  len(clip.Samples),
	})
	log.WithField("sample_rate", clip.SampleRate).Info("loaded")

	p, err := a.pipeline(clip.SampleRate)
	if err != nil {
		return err
	}
	filtered, err := p.Process(clip.Samples, clip.Channels)
	if err != nil {
		return err
	}

	result := &store.Clip{
		Samples:    filtered,
		SampleRate: clip.SampleRate,
		Channels:   clip.Channels,
	}
	if err := store.Save(out, result); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"path":    out,
		"samples": len(filtered),
		"backend": p.Backend().Name(),
	}).Info("filtered")
	return nil
}
