package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clinsight/extract-api/internal/config"
	"github.com/clinsight/extract-api/internal/handler"
	"github.com/clinsight/extract-api/internal/handler/report"
	"github.com/clinsight/extract-api/internal/pdf"
	"github.com/clinsight/extract-api/internal/router"
	extractionService "github.com/clinsight/extract-api/internal/service/extraction"
	"github.com/clinsight/extract-api/pkg/logger"
	"github.com/clinsight/extract-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})

	// Initialize metrics
	m := metrics.NewMetrics("extract_api", "pipeline")

	// Initialize the PDF text collaborator
	pdfReader := pdf.NewReader()

	// Initialize services
	extractionSvc := extractionService.NewService(pdfReader, m, appLogger, extractionService.Config{
		CacheTTL:      cfg.Extraction.CacheTTL,
		CacheCleanup:  cfg.Extraction.CacheCleanup,
		CacheDisabled: cfg.Extraction.CacheDisabled,
	})

	// Initialize handlers
	h := handler.NewHandler()
	reportHandler := report.NewHandler(extractionSvc, m)

	// Setup router
	r := router.NewRouter(reportHandler, h, router.Config{
		RateLimit:     cfg.RateLimit.RPS,
		RateBurst:     cfg.RateLimit.Burst,
		MaxUploadSize: cfg.Upload.MaxSizeBytes,
		MetricsPrefix: "extract_api",
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     r.Engine(),
		ReadTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		appLogger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
