package breaker

import "github.com/prometheus/client_golang/prometheus"

var (
	BreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "store_circuit_breaker_state",
		Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
	}, []string{"name"})

	BreakerRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_circuit_breaker_rejections_total",
		Help: "Reads rejected while the circuit was open",
	}, []string{"name"})
)

func init() {
	prometheus.MustRegister(BreakerState, BreakerRejections)
}
