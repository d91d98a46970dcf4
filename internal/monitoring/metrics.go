package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

var (
	// Simulation metrics
	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_replay_simulations_total",
			Help: "Total number of simulation runs",
		},
		[]string{"engine"},
	)

	simulationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "risk_replay_simulation_duration_seconds",
			Help:    "Distribution of simulation run durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	tradesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_replay_trades_processed_total",
			Help: "Total number of input trades walked by the engines",
		},
		[]string{"engine", "status"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_replay_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(simulationsTotal)
	prometheus.MustRegister(simulationDuration)
	prometheus.MustRegister(tradesProcessed)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordSimulation records one completed simulation run.
func RecordSimulation(engine string, duration time.Duration, result *types.SimulationResult) {
	simulationsTotal.WithLabelValues(engine).Inc()
	simulationDuration.WithLabelValues(engine).Observe(duration.Seconds())
	for _, t := range result.Trades {
		tradesProcessed.WithLabelValues(engine, string(t.Status)).Inc()
	}
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
