// FitFlow API
//
// REST API for training analytics and adaptive workout generation.
//
//	@title			FitFlow API
//	@version		1.0
//	@description	Analyze training history for progress, injury risk and plateaus, and generate readiness-adapted workouts.
//
//	@BasePath	/v1
//
//	@tag.name			analysis
//	@tag.description	Multi-factor training analysis endpoints
//
//	@tag.name			workouts
//	@tag.description	Adaptive workout generation endpoints
//
//	@tag.name			health
//	@tag.description	Engine health endpoints
package main

import (
	"context"
	"net/http"

	"github.com/fitflow/fitflow/internal/api"
	"github.com/fitflow/fitflow/internal/api/handler"
	"github.com/fitflow/fitflow/internal/catalog"
	"github.com/fitflow/fitflow/internal/config"
	"github.com/fitflow/fitflow/internal/engine"
	"github.com/fitflow/fitflow/internal/generator"
	"github.com/fitflow/fitflow/internal/logging"
	"github.com/fitflow/fitflow/internal/telemetry"
	"github.com/fitflow/fitflow/internal/telemetry/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})

	// Initialize tracing (no-op when Langfuse is not configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "fitflow-api")
	if err != nil {
		logrus.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logrus.Errorf("Tracer shutdown: %v", err)
		}
	}()

	// Wire the engine
	metricsManager := metrics.NewManager("fitflow", prometheus.DefaultRegisterer)
	analysisEngine := engine.New(generator.New(), metricsManager, logrus.StandardLogger())
	catalogCache := catalog.New(cfg.CatalogCacheMB)

	// Initialize handlers
	analysisHandler := handler.NewAnalysisHandler(analysisEngine, catalogCache)
	workoutHandler := handler.NewWorkoutHandler(analysisEngine, catalogCache)
	healthHandler := handler.NewHealthHandler(analysisEngine)

	// Setup router
	router := api.NewRouter(analysisHandler, workoutHandler, healthHandler, metricsManager)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	logrus.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}
}
