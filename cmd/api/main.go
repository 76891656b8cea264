package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Yinka-911/cervical-cancer-classifier/config"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/handler/health"
	predictionHandler "github.com/Yinka-911/cervical-cancer-classifier/internal/handler/prediction"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/inference"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/middleware"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/router"
	predictionService "github.com/Yinka-911/cervical-cancer-classifier/internal/service/prediction"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/logger"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml")
	flag.Parse()

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	gin.SetMode(gin.ReleaseMode)

	// Load model artifacts; any disagreement between them aborts startup
	model, err := inference.LoadModel(cfg.Model.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Model.Path).Msg("failed to load model")
	}
	manifest, err := inference.LoadManifest(cfg.Model.ManifestPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Model.ManifestPath).Msg("failed to load feature manifest")
	}

	// Initialize metrics
	var (
		mt       *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		mt = metrics.NewMetrics(cfg.Metrics.Namespace, reg)
		gatherer = reg
	}

	// Initialize services
	predictionSvc, err := predictionService.NewService(model, manifest, mt)
	if err != nil {
		log.Fatal().Err(err).Msg("model artifacts are inconsistent")
	}
	info := predictionSvc.Info()
	log.Info().
		Str("model_type", info.ModelType).
		Int("features", info.Features).
		Msg("model loaded")

	// Initialize handlers
	predictionH := predictionHandler.NewHandler(predictionSvc)
	healthH := health.NewHandler(predictionSvc, gatherer)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins

	sizeLimit := middleware.DefaultSizeLimitConfig()
	sizeLimit.MaxBodySize = cfg.Server.MaxBodyBytes
	sizeLimit.MaxHeaderSize = cfg.Server.MaxHeaderBytes

	// Setup router
	r := router.NewRouter(predictionH, healthH, mt, router.RouterConfig{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:        cfg.RateLimit.Burst,
		CORSConfig:       corsConfig,
		SizeLimit:        sizeLimit,
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Start server
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("prediction service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
