package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-bandpass/audio/store"
	"github.com/cwbudde/algo-bandpass/dsp/channel"
	"github.com/cwbudde/algo-bandpass/dsp/filter/bandlimit"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
	"github.com/cwbudde/algo-bandpass/dsp/spectrum"
	"github.com/cwbudde/algo-bandpass/dsp/transform"
	"github.com/cwbudde/algo-bandpass/dsp/window"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type spectrumOptions struct {
	channel  int
	window   string
	peaks    int
	filtered bool
}

func newSpectrumCommand(a *app) *cobra.Command {
	var o spectrumOptions
	cmd := &cobra.Command{
		Use:   "spectrum <input>",
		Short: "Print the strongest spectral peaks and shape of one channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSpectrum(cmd.OutOrStdout(), args[0], o)
		},
	}
	cmd.Flags().IntVar(&o.channel, "channel", 0, "channel index to analyze")
	cmd.Flags().StringVar(&o.window, "window", "rectangular", "analysis window (rectangular, hann, hamming, blackman, flattop, kaiser)")
	cmd.Flags().IntVar(&o.peaks, "peaks", 5, "number of peaks to print (0 prints all)")
	cmd.Flags().BoolVar(&o.filtered, "filtered", false, "apply the band filter before analysis")
	return cmd
}

func (a *app) runSpectrum(w io.Writer, in string, o spectrumOptions) error {
	wt, err := window.ParseType(o.window)
	if err != nil {
		return err
	}
	clip, err := store.Load(in)
	if err != nil {
		return err
	}
	chans, err := channel.Deinterleave(clip.Samples, clip.Channels)
	if err != nil {
		return err
	}
	if o.channel < 0 || o.channel >= len(chans) {
		return fmt.Errorf("channel %d out of range [0, %d)", o.channel, len(chans))
	}

	signal := chans[o.channel]
	if o.filtered {
		p, err := a.pipeline(clip.SampleRate)
		if err != nil {
			return err
		}
		if signal, err = p.ProcessChannel(signal); err != nil {
			return err
		}
		signal = signal[:len(chans[o.channel])]
	}
	window.Apply(wt, signal)
	gain := window.CoherentGain(window.Generate(wt, len(signal)))

	backend, err := transform.New(a.cfg.Backend)
	if err != nil {
		return err
	}
	spec, err := backend.Forward(signal)
	if err != nil {
		return err
	}
	freqs := fourier.FFTFreqs(len(spec), float64(clip.SampleRate))
	peaks, err := spectrum.Peaks(spec, freqs, o.peaks)
	if err != nil {
		return err
	}
	shape, err := spectrum.Describe(spec, freqs, spectrum.DefaultRolloff)
	if err != nil {
		return err
	}
	pass, err := bandlimit.NewWindow(a.cfg.FilterLowerHz, a.cfg.FilterUpperHz)
	if err != nil {
		return err
	}
	inBand, err := spectrum.InBandRatio(spec, freqs, pass)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"path":     in,
		"channel":  o.channel,
		"fft_size": len(spec),
		"peaks":    len(peaks),
	}).Debug("spectrum analyzed")

	// A bin-centred tone of amplitude A reports A*n*gain/(2L) after padding
	// n samples to L and windowing.
	amplitudeScale := 0.0
	if len(signal) > 0 && gain > 0 {
		amplitudeScale = 2 * float64(len(spec)) / (float64(len(signal)) * gain)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tMagnitude\tLevel [dB]\tAmplitude\n")
	fmt.Fprintf(tw, "---\t--------------\t---------\t----------\t---------\n")
	for _, p := range peaks {
		fmt.Fprintf(tw, "%d\t%.2f\t%.6f\t%.2f\t%.4f\n",
			p.Bin, p.FrequencyHz, p.Magnitude, p.DB, p.Magnitude*amplitudeScale)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\ncentroid=%.2fHz spread=%.2fHz flatness=%.4f rolloff=%.2fHz in_band=%.4f\n",
		shape.CentroidHz, shape.SpreadHz, shape.Flatness, shape.RolloffHz, inBand)
	return err
}
