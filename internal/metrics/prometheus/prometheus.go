package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements metrics.Recorder for Prometheus.
type Collector struct {
	namespace string

	actions        *prometheus.CounterVec
	decodeRejected prometheus.Counter
	runs           *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
}

func NewCollector(namespace string) *Collector {
	return &Collector{
		namespace: namespace,
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "Total number of applied actions per type and outcome",
			},
			[]string{"kind", "outcome"},
		),
		decodeRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decode_rejected_total",
				Help:      "Total number of input records that failed to decode",
			},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of finished batch runs per status",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of batch runs",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
	}
}

// Register registers all collectors with the given registerer.
func (c *Collector) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		c.actions,
		c.decodeRejected,
		c.runs,
		c.runDuration,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

func (c *Collector) RecordAction(kind, outcome string) {
	c.actions.WithLabelValues(kind, outcome).Inc()
}

func (c *Collector) RecordDecodeRejected() {
	c.decodeRejected.Inc()
}

func (c *Collector) RecordRun(status string, duration time.Duration) {
	c.runs.WithLabelValues(status).Inc()
	c.runDuration.WithLabelValues(status).Observe(duration.Seconds())
}
