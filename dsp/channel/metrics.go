package channel

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-channel pipeline activity, labelled by backend.
type Metrics struct {
	channels *prometheus.CounterVec
	samples  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the pipeline collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		channels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bandpass",
			Name:      "channels_processed_total",
			Help:      "Number of channels run through the band-pass chain.",
		}, []string{"backend"}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bandpass",
			Name:      "samples_processed_total",
			Help:      "Number of input samples run through the band-pass chain.",
		}, []string{"backend"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bandpass",
			Name:      "channel_duration_seconds",
			Help:      "Time spent filtering one channel.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"backend"}),
	}

	for _, c := range []prometheus.Collector{m.channels, m.samples, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("channel: register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observe(backend string, samples int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.channels.WithLabelValues(backend).Inc()
	m.samples.WithLabelValues(backend).Add(float64(samples))
	m.duration.WithLabelValues(backend).Observe(elapsed.Seconds())
}
