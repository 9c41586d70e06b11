package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/fitflow/fitflow/docs"
	"github.com/fitflow/fitflow/internal/api/handler"
	"github.com/fitflow/fitflow/internal/api/middleware"
	"github.com/fitflow/fitflow/internal/telemetry/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	analysisHandler *handler.AnalysisHandler
	workoutHandler  *handler.WorkoutHandler
	healthHandler   *handler.HealthHandler
	metricsManager  *metrics.Manager
}

func NewRouter(
	analysisHandler *handler.AnalysisHandler,
	workoutHandler *handler.WorkoutHandler,
	healthHandler *handler.HealthHandler,
	metricsManager *metrics.Manager,
) *Router {
	return &Router{
		analysisHandler: analysisHandler,
		workoutHandler:  workoutHandler,
		healthHandler:   healthHandler,
		metricsManager:  metricsManager,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.metricsManager))
	r.Use(middleware.Tracing)
	r.Use(middleware.Metrics(rt.metricsManager))

	// Liveness
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users/{userId}", func(r chi.Router) {
			r.Post("/analysis", rt.analysisHandler.Analyze)
		})
		r.Post("/workouts/generate", rt.workoutHandler.Generate)
		r.Get("/health/analysis", rt.healthHandler.EngineHealth)
	})

	return r
}
