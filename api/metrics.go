package api

import (
	"context"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// MetricsResponse represents the parsed metrics summary
type MetricsResponse struct {
	Memory    MemoryMetrics    `json:"memory"`
	Runtime   RuntimeMetrics   `json:"runtime"`
	Ingestion IngestionMetrics `json:"ingestion"`
}

// MemoryMetrics contains memory usage information
type MemoryMetrics struct {
	ResidentMB float64 `json:"resident_mb"`
}

// RuntimeMetrics contains Go runtime information
type RuntimeMetrics struct {
	Goroutines int `json:"goroutines"`
}

// IngestionMetrics contains text ingestion totals
type IngestionMetrics struct {
	Texts         int64 `json:"texts"`
	ValidTokens   int64 `json:"valid_tokens"`
	InvalidTokens int64 `json:"invalid_tokens"`
}

// MetricsHandler returns a JSON summary of the prometheus metrics
// GET /api/metrics
func MetricsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, MetricsResponse{
		Memory:    getMemoryMetrics(ctx),
		Runtime:   RuntimeMetrics{Goroutines: runtime.NumGoroutine()},
		Ingestion: getIngestionMetrics(ctx),
	})
}

func getMemoryMetrics(ctx context.Context) MemoryMetrics {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("Failed to gather prometheus metrics")
		return MemoryMetrics{}
	}

	for _, mf := range mfs {
		if mf.GetName() == "process_resident_memory_bytes" {
			for _, m := range mf.GetMetric() {
				return MemoryMetrics{ResidentMB: m.GetGauge().GetValue() / (1024 * 1024)}
			}
		}
	}
	return MemoryMetrics{}
}

func getIngestionMetrics(ctx context.Context) IngestionMetrics {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("Failed to gather prometheus metrics for ingestion")
		return IngestionMetrics{}
	}

	var res IngestionMetrics
	for _, mf := range mfs {
		switch mf.GetName() {
		case "wordbag_texts_ingested_count":
			for _, m := range mf.GetMetric() {
				res.Texts += int64(m.GetCounter().GetValue())
			}
		case "wordbag_tokens_count":
			for _, m := range mf.GetMetric() {
				for _, l := range m.GetLabel() {
					if l.GetName() != "outcome" {
						continue
					}
					switch l.GetValue() {
					case "valid":
						res.ValidTokens += int64(m.GetCounter().GetValue())
					case "invalid":
						res.InvalidTokens += int64(m.GetCounter().GetValue())
					}
				}
			}
		}
	}
	return res
}
