package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var httpRequestsTotal = makeCollector(prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: metricPrefix + "http_requests_total",
	Help: "Total number of HTTP requests handled",
}, []string{"method", "route", "status_code"}))

var httpRequestLatency = makeCollector(prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    metricPrefix + "http_request_latency_seconds",
	Help:    "Histogram of HTTP request latencies in seconds",
	Buckets: defaultBuckets,
}, []string{"method", "route"}))

// RecordHTTPRequest records an HTTP request being handled. route is the
// matched route pattern, or "unmatched" when no route matched.
func RecordHTTPRequest(method, route string, statusCode int, latencySec float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	if latencySec > 0 {
		httpRequestLatency.WithLabelValues(method, route).Observe(latencySec)
	}
}
