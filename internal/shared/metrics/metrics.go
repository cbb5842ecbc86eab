package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Results recorded for db-status checks.
const (
	ResultConnected = "connected"
	ResultError     = "error"
)

var (
	registry = prometheus.NewRegistry()

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	dbStatusChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_status_checks_total",
			Help: "Database status probes by result",
		},
		[]string{"result"},
	)
	dbStatusDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_status_duration_seconds",
		Help:    "Duration of the employees read behind db-status",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
	employeesReturned = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "db_status_employees_returned",
		Help: "Row count of the last successful db-status probe",
	})
)

func init() {
	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		dbStatusChecksTotal,
		dbStatusDuration,
		employeesReturned,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(route, method string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// ObserveDBStatus records the outcome of one db-status probe.
func ObserveDBStatus(result string, rows int, seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	dbStatusChecksTotal.WithLabelValues(result).Inc()
	dbStatusDuration.Observe(seconds)
	if result == ResultConnected {
		employeesReturned.Set(float64(rows))
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Registry returns the registry backing Handler.
func Registry() *prometheus.Registry {
	return registry
}
