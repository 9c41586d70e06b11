package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// SetRecord is a single logged set. Weight, reps and RPE may be absent for
// bodyweight or sloppily-logged sets; absence never fails a computation.
// @Description One set of an exercise with optional weight, reps and RPE.
type SetRecord struct {
	// Weight lifted in kilograms, absent for bodyweight sets
	WeightKg *float64 `json:"weight_kg,omitempty" example:"80"`
	// Repetitions completed
	Reps *int `json:"reps,omitempty" example:"8"`
	// Rate of perceived exertion, 1-10
	RPE *float64 `json:"rpe,omitempty" example:"7.5" minimum:"1" maximum:"10"`
	// Rest taken after this set, in seconds
	RestSeconds int `json:"rest_seconds" example:"120"`
	// True when this set was flagged as a personal record
	PersonalRecord bool `json:"personal_record,omitempty"`
}

// Volume returns weight x reps for the set, or 0 when either is missing.
func (s SetRecord) Volume() float64 {
	if s.WeightKg == nil || s.Reps == nil {
		return 0
	}
	return *s.WeightKg * float64(*s.Reps)
}

// ExerciseRecord is one exercise performed inside a session, with its sets in
// logged order.
// @Description Exercise performed in a session with its ordered sets.
type ExerciseRecord struct {
	// Catalog id of the exercise
	ExerciseID string `json:"exercise_id" example:"barbell-back-squat"`
	Name       string `json:"name" example:"Barbell Back Squat"`
	// Movement category, e.g. compound, isolation, mobility
	Category string      `json:"category" example:"compound"`
	Sets     []SetRecord `json:"sets"`
}

// Volume sums the volume of every set of the exercise.
func (e ExerciseRecord) Volume() float64 {
	var total float64
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

// MaxWeight returns the heaviest weight logged across the exercise's sets,
// and false when no set carries a weight.
func (e ExerciseRecord) MaxWeight() (float64, bool) {
	var best float64
	found := false
	for _, s := range e.Sets {
		if s.WeightKg != nil && (!found || *s.WeightKg > best) {
			best = *s.WeightKg
			found = true
		}
	}
	return best, found
}

// WorkoutSession is one completed (or in-progress) training session.
// @Description A training session with its exercises and aggregate stats.
type WorkoutSession struct {
	ID     uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Template the session was started from, if any
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	StartedAt  time.Time  `json:"started_at" example:"2024-03-01T17:30:00Z"`
	// Completion time, absent for abandoned sessions
	CompletedAt *time.Time `json:"completed_at,omitempty" example:"2024-03-01T18:45:00Z"`
	// Session length in minutes
	DurationMinutes int `json:"duration_minutes" example:"75"`
	// Aggregate volume in kg as reported upstream; recomputed when zero
	TotalVolumeKg float64 `json:"total_volume_kg" example:"8450"`
	// Average effort rating across sets, 1-10
	AvgRPE    *float64         `json:"avg_rpe,omitempty" example:"7.5"`
	Exercises []ExerciseRecord `json:"exercises"`
}

// Volume returns the session's total volume, preferring the upstream
// aggregate and falling back to summing the sets.
func (w WorkoutSession) Volume() float64 {
	if w.TotalVolumeKg > 0 {
		return w.TotalVolumeKg
	}
	var total float64
	for _, ex := range w.Exercises {
		total += ex.Volume()
	}
	return total
}

// HasExercise reports whether the session contains the given catalog
// exercise.
func (w WorkoutSession) HasExercise(exerciseID string) bool {
	for _, ex := range w.Exercises {
		if ex.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

// SortSessionsByDate returns a copy of sessions ordered oldest first.
func SortSessionsByDate(sessions []WorkoutSession) []WorkoutSession {
	sorted := make([]WorkoutSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.Before(sorted[j].StartedAt)
	})
	return sorted
}
