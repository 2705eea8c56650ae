package observability

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const (
	OpSerialize   = "serialize"
	OpDeserialize = "deserialize"
)

// Metrics counts codec traffic. A nil *Metrics records nothing.
type Metrics struct {
	packets *prometheus.CounterVec
	errors  *prometheus.CounterVec
	bytes   *prometheus.HistogramVec
}

// NewMetrics registers the codec collectors on reg under namespace.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		packets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "packets_total",
				Help:      "Packets serialized or deserialized successfully.",
			},
			[]string{"origin", "op", "kind"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "errors_total",
				Help:      "Codec failures by error class.",
			},
			[]string{"origin", "op", "class"},
		),
		bytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "packet_bytes",
				Help:      "Encoded packet size in bytes.",
				Buckets:   prometheus.ExponentialBuckets(4, 2, 12),
			},
			[]string{"origin", "op"},
		),
	}
	for _, c := range []prometheus.Collector{m.packets, m.errors, m.bytes} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register codec metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) RecordPacket(origin, op, kind string, size int) {
	if m == nil {
		return
	}
	m.packets.WithLabelValues(origin, op, kind).Inc()
	m.bytes.WithLabelValues(origin, op).Observe(float64(size))
}

func (m *Metrics) RecordError(origin, op, class string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(origin, op, class).Inc()
}

// WriteText dumps every family in g using the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	return writeFamilies(w, families)
}

func writeFamilies(w io.Writer, families []*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
