package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the instrumentation for the queue demo.
type Metrics struct {
	QueueDepth    prometheus.Gauge
	QueueCapacity prometheus.Gauge
	ProducedTotal *prometheus.CounterVec
	ConsumedTotal prometheus.Counter
	RejectedTotal *prometheus.CounterVec
}

// New creates the metric set and registers it with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queue_depth",
			Help: "Items currently buffered in the queue",
		}),
		QueueCapacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queue_capacity",
			Help: "Current queue capacity bound",
		}),
		ProducedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "items_produced_total",
			Help: "Items accepted by the queue",
		}, []string{"producer"}),
		ConsumedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "items_consumed_total",
			Help: "Items removed from the queue",
		}),
		RejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "items_rejected_total",
			Help: "Non-blocking puts rejected because the queue was full",
		}, []string{"producer"}),
	}

	reg.MustRegister(
		m.QueueDepth,
		m.QueueCapacity,
		m.ProducedTotal,
		m.ConsumedTotal,
		m.RejectedTotal,
	)
	return m
}
