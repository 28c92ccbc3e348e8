package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sinkEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "events",
	Name:      "delivered_total",
	Help:      "Count of events handed to a sink.",
}, []string{"sink", "kind", "status"})

// Sink tracks event delivery of one sink.
type Sink struct {
	name string
}

// NewSink constructs a collector for the named sink.
func NewSink(name string) *Sink {
	if name == "" {
		name = "unknown"
	}
	return &Sink{name: name}
}

// Observe records one delivery attempt.
func (m Sink) Observe(kind string, err error) {
	sinkEventsTotal.WithLabelValues(m.name, kind, status(err)).Inc()
}
