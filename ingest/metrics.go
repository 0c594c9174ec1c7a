package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts records seen by a Decoder. A nil *Metrics is valid and records nothing.
type Metrics struct {
	RecordsRead     prometheus.Counter
	RecordsRejected prometheus.Counter
}

// NewMetrics creates the ingest counters and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RecordsRead: f.NewCounter(prometheus.CounterOpts{
			Namespace: "scg_ingest",
			Name:      "records_read_total",
			Help:      "Data records read from the input, including rejected ones.",
		}),
		RecordsRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: "scg_ingest",
			Name:      "records_rejected_total",
			Help:      "Data records that failed to decode into a customer.",
		}),
	}
}

func (m *Metrics) recordRead() {
	if m == nil {
		return
	}

	m.RecordsRead.Inc()
}

func (m *Metrics) recordRejected() {
	if m == nil {
		return
	}

	m.RecordsRejected.Inc()
}
