package ingest

import "go.uber.org/zap"

// Option configures a Decoder during NewDecoder().
type Option func(*Decoder)

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) Option { return func(d *Decoder) { d.r.Comma = r } }

// WithLogger sets the logger used for debug output. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics sets the counters updated per record.
func WithMetrics(m *Metrics) Option { return func(d *Decoder) { d.metrics = m } }
