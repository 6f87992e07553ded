package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	Namespace = "visitordata"
	Subsystem = "tokens"
)

// Metrics token counters; a nil *Metrics is a valid no-op
type Metrics struct {
	generated prometheus.Counter
	decoded   prometheus.Counter
	rejected  *prometheus.CounterVec
}

// NewMetrics creates and registers the token counters on reg
// if reg is nil, prometheus.DefaultRegisterer is used
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "generated_total",
			Help:      "Number of visitor data tokens generated",
		}),
		decoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "decoded_total",
			Help:      "Number of visitor data tokens decoded successfully",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "rejected_total",
			Help:      "Number of visitor data tokens rejected, by reason",
		}, []string{"reason"}),
	}
	for _, c := range []prometheus.Collector{m.generated, m.decoded, m.rejected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) TokenGenerated() {
	if m != nil {
		m.generated.Inc()
	}
}

func (m *Metrics) TokenDecoded() {
	if m != nil {
		m.decoded.Inc()
	}
}

// TokenRejected counts a token that failed to decode
// reason should be a small fixed set, e.g. "encoding" or "structure"
func (m *Metrics) TokenRejected(reason string) {
	if m != nil {
		m.rejected.WithLabelValues(reason).Inc()
	}
}
