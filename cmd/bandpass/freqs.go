package main

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-bandpass/dsp/core"
	"github.com/cwbudde/algo-bandpass/dsp/fourier"
	"github.com/spf13/cobra"
)

func newFreqsCommand(a *app) *cobra.Command {
	var (
		size    int
		bounded bool
	)
	cmd := &cobra.Command{
		Use:   "freqs",
		Short: "Print the frequency of every spectrum bin",
		Long: "Print FFT bin frequencies for a --size sample transform (padded to a power\n" +
			"of two), or with --bounded the integer frequencies of the bounded DFT band.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bounded {
				return a.printBoundedFreqs(cmd.OutOrStdout())
			}
			return a.printFFTFreqs(cmd.OutOrStdout(), size)
		},
	}
	cmd.Flags().IntVar(&size, "size", 1024, "signal length in samples")
	cmd.Flags().BoolVar(&bounded, "bounded", false, "print bounded DFT frequencies instead")
	return cmd
}

func (a *app) printFFTFreqs(w io.Writer, size int) error {
	if size < 0 {
		return fmt.Errorf("size must be >= 0: %d", size)
	}
	if size == 0 {
		return nil
	}
	for i, f := range fourier.FFTFreqs(core.NextPowerOf2(size), a.cfg.SampleRate) {
		if _, err := fmt.Fprintf(w, "%d\t%g\n", i, f); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printBoundedFreqs(w io.Writer) error {
	b, err := fourier.NewBounded(core.ApplyProcessorOptions(a.cfg.ProcessorOptions()...))
	if err != nil {
		return err
	}
	for i, f := range b.Freqs() {
		if _, err := fmt.Fprintf(w, "%d\t%g\n", i, f); err != nil {
			return err
		}
	}
	return nil
}
