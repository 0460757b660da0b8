package common

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(incomingRequestsCounter)
	prometheus.MustRegister(pendingRequestsCounter)
}

var incomingRequestsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "path"},
)

var pendingRequestsCounter = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_pending",
		Help: "Total number of HTTP requests being processed",
	},
	[]string{"method", "path"},
)

func GetCommonMetricsMiddleware(serviceLogs chan<- ServiceLog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			labels := prometheus.Labels{"method": r.Method, "path": r.URL.Path}
			incomingRequestsCounter.With(labels).Inc()
			pending := pendingRequestsCounter.With(labels)
			pending.Inc()
			defer pending.Dec()
			next.ServeHTTP(w, r)
		})
	}
}
