package main

import (
	"fmt"

	"github.com/cwbudde/algo-bandpass/dsp/channel"
	"github.com/cwbudde/algo-bandpass/internal/config"
	"github.com/cwbudde/algo-bandpass/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	envFile    string

	cfg      *config.Config
	log      *logrus.Logger
	registry *prometheus.Registry
	metrics  *channel.Metrics
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:           "bandpass",
		Short:         "Band-limit audio in the frequency domain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.writeMetrics()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file to load (default .env when present)")
	flags.Float64("sample-rate", 0, "sample rate in Hz for generated and headerless data")
	flags.Int("channels", 0, "channel count for generated audio")
	flags.Int("band-min", 0, "lowest integer frequency of the bounded DFT")
	flags.Int("band-max", 0, "highest integer frequency of the bounded DFT")
	flags.Float64("lower-hz", 0, "lower edge of the pass window in Hz (inclusive)")
	flags.Float64("upper-hz", 0, "upper edge of the pass window in Hz (inclusive)")
	flags.String("backend", "", "transform backend (see 'bandpass backends')")
	flags.Int("workers", 0, "channels processed concurrently")
	flags.Bool("trim-padding", false, "cut filtered channels back to their input length")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.String("metrics-textfile", "", "write Prometheus metrics to this file after the run")
	bindFlags(a.v, flags)

	cmd.AddCommand(
		newFilterCommand(a),
		newSpectrumCommand(a),
		newGenerateCommand(a),
		newFreqsCommand(a),
		newBackendsCommand(a),
	)
	return cmd
}

var flagKeys = map[string]string{
	"sample-rate":      config.KeySampleRate,
	"channels":         config.KeyChannels,
	"band-min":         config.KeyBandMinHz,
	"band-max":         config.KeyBandMaxHz,
	"lower-hz":         config.KeyFilterLowerHz,
	"upper-hz":         config.KeyFilterUpperHz,
	"backend":          config.KeyBackend,
	"workers":          config.KeyWorkers,
	"trim-padding":     config.KeyTrimPadding,
	"log-level":        config.KeyLogLevel,
	"log-format":       config.KeyLogFormat,
	"metrics-textfile": config.KeyMetricsTextfile,
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := cfg.LoggingOptions()
	opts.Output = cmd.ErrOrStderr()
	a.log, err = logging.New(opts)
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	a.metrics, err = channel.NewMetrics(a.registry)
	if err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"backend": cfg.Backend,
		"window":  fmt.Sprintf("[%g, %g]", cfg.FilterLowerHz, cfg.FilterUpperHz),
	}).Debug("configuration loaded")
	return nil
}

func (a *app) writeMetrics() error {
	if a.cfg == nil || a.cfg.MetricsTextfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsTextfile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.WithField("path", a.cfg.MetricsTextfile).Debug("metrics written")
	return nil
}
