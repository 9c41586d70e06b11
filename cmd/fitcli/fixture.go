package main

import "github.com/fitflow/fitflow/internal/domain"

// fixture is the JSON document every fitcli command works with: one user's
// collections plus an optional workout request.
type fixture struct {
	UserID    string                        `json:"user_id"`
	Workouts  []domain.WorkoutSession       `json:"workouts"`
	Metrics   []domain.DailyMetric          `json:"metrics"`
	Exercises []domain.ExerciseCatalogEntry `json:"exercises"`
	Request   *domain.WorkoutRequest        `json:"request,omitempty"`
}
