package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitflow/fitflow/internal/api/validation"
	"github.com/fitflow/fitflow/internal/catalog"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/pkg/problem"
)

// WorkoutEngine is the slice of the engine the workout handler needs.
type WorkoutEngine interface {
	GenerateWorkout(ctx context.Context, req domain.WorkoutRequest, exercises []domain.ExerciseCatalogEntry, metrics []domain.DailyMetric, history []domain.WorkoutSession) (domain.GeneratedWorkout, error)
}

// GenerateWorkoutRequest wraps the workout parameters with the collections
// generation draws on.
// @Description Workout parameters plus catalog, metrics and history.
type GenerateWorkoutRequest struct {
	Request domain.WorkoutRequest `json:"request" validate:"required"`
	// Exercise catalog; may be omitted when a previous request cached it
	Exercises []domain.ExerciseCatalogEntry `json:"exercises,omitempty"`
	Metrics   []domain.DailyMetric          `json:"metrics,omitempty"`
	History   []domain.WorkoutSession       `json:"history,omitempty"`
}

type WorkoutHandler struct {
	engine  WorkoutEngine
	catalog *catalog.Cache
}

func NewWorkoutHandler(engine WorkoutEngine, catalogCache *catalog.Cache) *WorkoutHandler {
	return &WorkoutHandler{engine: engine, catalog: catalogCache}
}

// Generate handles POST /v1/workouts/generate
// @Summary Generate an adapted workout
// @Description Select exercises, prescribe sets/reps/RPE and apply the readiness, injury, equipment and plateau adaptation rules.
// @Tags workouts
// @Accept json
// @Produce json
// @Param request body GenerateWorkoutRequest true "Workout request with supporting collections"
// @Success 200 {object} domain.GeneratedWorkout
// @Failure 400 {object} problem.Problem "Invalid JSON body or no candidate exercises"
// @Failure 422 {object} problem.Problem "Invalid workout request fields"
// @Router /workouts/generate [post]
func (h *WorkoutHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req.Request); fieldErrors != nil {
		problem.ValidationError("Workout request contains invalid fields", fieldErrors).Write(w)
		return
	}

	exercises := h.catalog.Resolve(req.Request.UserID, req.Exercises)

	workout, err := h.engine.GenerateWorkout(r.Context(), req.Request, exercises, req.Metrics, req.History)
	if err != nil {
		if errors.Is(err, domain.ErrNoCandidates) {
			problem.NoCandidates("No exercise in the catalog satisfies the equipment, exclusion and experience constraints").Write(w)
			return
		}
		problem.InternalError("Failed to generate workout").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workout)
}
