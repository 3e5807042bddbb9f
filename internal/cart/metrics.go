package cart

import "github.com/prometheus/client_golang/prometheus"

// Metrics - метрики корзины, регистрируются в переданном Registerer
type Metrics struct {
	transitions   *prometheus.CounterVec
	persistErrors prometheus.Counter
	items         prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cart_transitions_total",
				Help: "Total number of applied cart transitions",
			},
			[]string{"action"},
		),
		persistErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cart_persist_errors_total",
				Help: "Total number of failed cart writes to storage",
			},
		),
		items: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cart_items",
				Help: "Current number of units in the cart",
			},
		),
	}

	reg.MustRegister(m.transitions, m.persistErrors, m.items)

	return m
}

func (m *Metrics) observe(kind ActionKind, totalItems int) {
	if m == nil {
		return
	}

	m.transitions.WithLabelValues(kind.String()).Inc()
	m.items.Set(float64(totalItems))
}

func (m *Metrics) persistFailed() {
	if m == nil {
		return
	}

	m.persistErrors.Inc()
}
