package main

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-bandpass/audio/store"
	"github.com/cwbudde/algo-bandpass/dsp/signal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	waveform  string
	freqHz    float64
	amplitude float64
	duration  time.Duration
	seed      int64
}

func newGenerateCommand(a *app) *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate <output.wav>",
		Short: "Write a test tone on every configured channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(args[0], o)
		},
	}
	cmd.Flags().StringVar(&o.waveform, "waveform", "sine", "sine, sawtooth, triangle, square or noise")
	cmd.Flags().Float64Var(&o.freqHz, "freq", 440, "tone frequency in Hz")
	cmd.Flags().Float64Var(&o.amplitude, "amplitude", 0.5, "peak amplitude in [0, 1]")
	cmd.Flags().DurationVar(&o.duration, "duration", time.Second, "clip length")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "noise seed")
	return cmd
}

func (a *app) runGenerate(out string, o generateOptions) error {
	w, err := signal.ParseWaveform(o.waveform)
	if err != nil {
		return err
	}
	frames := int(o.duration.Seconds() * a.cfg.SampleRate)
	if frames <= 0 {
		return fmt.Errorf("duration %s yields no samples at %g Hz", o.duration, a.cfg.SampleRate)
	}

	g := signal.NewGeneratorWithOptions(a.cfg.ProcessorOptions(), signal.WithSeed(o.seed))
	samples, err := g.Interleaved(w, o.freqHz, o.amplitude, frames)
	if err != nil {
		return err
	}

	clip := &store.Clip{
		Samples:    samples,
		SampleRate: int(a.cfg.SampleRate),
		Channels:   a.cfg.Channels,
	}
	if err := store.Save(out, clip); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"path":     out,
		"waveform": w.String(),
		"channels": clip.Channels,
		"samples":  len(samples),
	}).Info("generated")
	return nil
}
