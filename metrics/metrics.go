package metrics

import "github.com/prometheus/client_golang/prometheus"

const metricPrefix = "wordbag_"

var defaultBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

func makeCollector[T prometheus.Collector](c T) T {
	prometheus.MustRegister(c)
	return c
}

var textsIngested = makeCollector(prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: metricPrefix + "texts_ingested_count",
	Help: "Total number of texts added to the bag",
}, []string{"format", "status"}))

var textBytes = makeCollector(prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: metricPrefix + "text_bytes_count",
	Help: "Total number of raw text bytes received",
}, []string{"format"}))

var tokensSeen = makeCollector(prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: metricPrefix + "tokens_count",
	Help: "Total number of whitespace-separated tokens seen, by whether they were counted as words",
}, []string{"outcome"}))

var uniqueWords = makeCollector(prometheus.NewGauge(prometheus.GaugeOpts{
	Name: metricPrefix + "unique_words",
	Help: "Current number of distinct words in the bag",
}))

var totalWords = makeCollector(prometheus.NewGauge(prometheus.GaugeOpts{
	Name: metricPrefix + "total_words",
	Help: "Current number of word occurrences in the bag",
}))

func init() {
	for _, outcome := range []string{"valid", "invalid"} {
		tokensSeen.WithLabelValues(outcome)
	}
}

// RecordTextIngested records a text being added to the bag
func RecordTextIngested(format string, size int, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	textsIngested.WithLabelValues(format, status).Inc()
	textBytes.WithLabelValues(format).Add(float64(size))
}

// RecordTokens records how many tokens of a text were counted and how many were dropped
func RecordTokens(valid, invalid int) {
	tokensSeen.WithLabelValues("valid").Add(float64(valid))
	tokensSeen.WithLabelValues("invalid").Add(float64(invalid))
}

// SetBagSize updates the bag size gauges
func SetBagSize(unique, total int) {
	uniqueWords.Set(float64(unique))
	totalWords.Set(float64(total))
}
