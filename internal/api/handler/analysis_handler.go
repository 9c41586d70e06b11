package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fitflow/fitflow/internal/catalog"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/pkg/problem"
	"github.com/go-chi/chi/v5"
)

// InsightEngine is the slice of the engine the analysis handler needs.
type InsightEngine interface {
	AnalyzeUser(ctx context.Context, userID string, workouts []domain.WorkoutSession, metrics []domain.DailyMetric, exercises []domain.ExerciseCatalogEntry) domain.InsightReport
}

// AnalysisRequest carries the caller's collections. Storage lives upstream,
// so every analysis request posts its own data.
// @Description Training history and wellness data to analyze.
type AnalysisRequest struct {
	Workouts []domain.WorkoutSession `json:"workouts"`
	Metrics  []domain.DailyMetric    `json:"metrics"`
	// Exercise catalog; may be omitted when a previous request cached it
	Exercises []domain.ExerciseCatalogEntry `json:"exercises,omitempty"`
}

type AnalysisHandler struct {
	engine  InsightEngine
	catalog *catalog.Cache
}

func NewAnalysisHandler(engine InsightEngine, catalogCache *catalog.Cache) *AnalysisHandler {
	return &AnalysisHandler{engine: engine, catalog: catalogCache}
}

// Analyze handles POST /v1/users/{userId}/analysis
// @Summary Analyze a user's training data
// @Description Run the progress, injury-risk, plateau and training-window analyses over the posted collections. Always returns a fully-populated report; sparse data lowers confidence instead of failing.
// @Tags analysis
// @Accept json
// @Produce json
// @Param userId path string true "User id" example(660e8400-e29b-41d4-a716-446655440001)
// @Param request body AnalysisRequest true "Workouts, daily metrics and exercise catalog"
// @Success 200 {object} domain.InsightReport
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Router /users/{userId}/analysis [post]
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		problem.BadRequest("Missing user ID").Write(w)
		return
	}

	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	exercises := h.catalog.Resolve(userID, req.Exercises)
	report := h.engine.AnalyzeUser(r.Context(), userID, req.Workouts, req.Metrics, exercises)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
