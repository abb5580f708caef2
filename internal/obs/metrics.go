// Package obs holds Prometheus instrumentation shared across the HTTP layer
// and the Google adapters.
package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	googleCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "google_api_calls_total",
			Help: "Outbound Google API calls by service and outcome.",
		},
		[]string{"service", "outcome"},
	)

	tokenRefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "google_token_refreshes_total",
			Help: "Google OAuth token refreshes by outcome.",
		},
		[]string{"outcome"},
	)
)

// Init registers the metrics with the default registry. Call once at startup.
func Init() {
	prometheus.MustRegister(
		httpInFlight,
		httpRequestsTotal,
		httpRequestDuration,
		googleCallsTotal,
		tokenRefreshesTotal,
	)
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveGoogleCall records one outbound Google API call.
func ObserveGoogleCall(service string, err error) {
	googleCallsTotal.WithLabelValues(service, outcome(err)).Inc()
}

// ObserveTokenRefresh records one token refresh attempt.
func ObserveTokenRefresh(err error) {
	tokenRefreshesTotal.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Instrument wraps an HTTP handler with request counters and latency
// histograms. Paths are recorded as-is; the ServeMux patterns keep the
// cardinality bounded because IDs only appear in path segments we do not
// label.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		status := strconv.Itoa(sw.code)
		path := routePattern(r)
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpInFlight.Dec()
	})
}

// routePattern prefers the matched ServeMux pattern over the raw URL so that
// /api/clients/{id} stays one series regardless of the id.
func routePattern(r *http.Request) string {
	if p := r.Pattern; p != "" {
		return p
	}
	return r.URL.Path
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
