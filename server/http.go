package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Scrin/wordbag/api"
	"github.com/Scrin/wordbag/corpus"
	"github.com/Scrin/wordbag/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the HTTP routes serving the given corpus.
func NewRouter(c *corpus.Corpus) *gin.Engine {
	api.Init(c)

	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLoggingMiddleware())

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/healthcheck", api.HealthCheckHandler)
		apiGroup.GET("/metrics", api.MetricsHandler)
		apiGroup.GET("/stats", api.StatsHandler)

		apiGroup.POST("/texts", api.IngestTextHandler)

		wordsGroup := apiGroup.Group("/words")
		{
			wordsGroup.GET("", api.WordsHandler)
			wordsGroup.DELETE("", api.ResetHandler)
			wordsGroup.GET("/:word", api.WordHandler)
		}
	}

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
	})

	return router
}

// Run serves the corpus on addr until ctx is cancelled.
func Run(ctx context.Context, addr string, c *corpus.Corpus) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(c),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLoggingMiddleware logs HTTP requests using zerolog and records them in prometheus
func requestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), status, latency.Seconds())

		log.Debug().
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}
