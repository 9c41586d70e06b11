package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutType is the training focus of a generated session.
// @Description Workout focus: strength, hypertrophy, power, endurance or recovery.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutHypertrophy WorkoutType = "hypertrophy"
	WorkoutPower       WorkoutType = "power"
	WorkoutEndurance   WorkoutType = "endurance"
	WorkoutRecovery    WorkoutType = "recovery"
)

// FitnessLevel is the user's self-declared experience bracket.
// @Description Experience level: beginner, intermediate or advanced.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// WorkoutRequest describes the session the caller wants generated.
// @Description Parameters for workout generation.
type WorkoutRequest struct {
	UserID string `json:"user_id" validate:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Training focus of the session
	WorkoutType WorkoutType `json:"workout_type" validate:"required,workout_type" example:"strength"`
	// Desired session length in minutes
	TargetDurationMinutes int `json:"target_duration_minutes" validate:"required,min=10,max=240" example:"60"`
	// Equipment tags available to the user
	AvailableEquipment []string `json:"available_equipment" validate:"required,min=1" example:"barbell,rack,dumbbell"`
	// Muscle groups to emphasize; empty means full body
	TargetMuscleGroups []string `json:"target_muscle_groups,omitempty" example:"quads,back"`
	// Catalog ids to never select
	ExcludeExercises []string     `json:"exclude_exercises,omitempty"`
	FitnessLevel     FitnessLevel `json:"fitness_level" validate:"required,fitness_level" example:"intermediate"`
	// Readiness score 0-100 when the caller already computed one;
	// derived from recent metrics otherwise
	CurrentReadiness *float64 `json:"current_readiness,omitempty" validate:"omitempty,min=0,max=100" example:"72"`
}

// GeneratedExercise is one prescribed exercise inside a generated workout.
// @Description Prescribed exercise with set/rep/RPE/rest targets.
type GeneratedExercise struct {
	ExerciseID string `json:"exercise_id" example:"barbell-back-squat"`
	Name       string `json:"name" example:"Barbell Back Squat"`
	// Muscle groups the prescription targets
	MuscleGroups []string `json:"muscle_groups" example:"quads,glutes"`
	// Equipment the prescription assumes
	Equipment  []string `json:"equipment,omitempty" example:"barbell,rack"`
	TargetSets int      `json:"target_sets" example:"4"`
	// Target rep range, min==max for fixed prescriptions
	TargetRepsMin int `json:"target_reps_min" example:"4"`
	TargetRepsMax int `json:"target_reps_max" example:"6"`
	// Target effort, 1-10; zero for warm-up and cool-down items
	TargetRPE   float64 `json:"target_rpe,omitempty" example:"8"`
	RestSeconds int     `json:"rest_seconds" example:"180"`
	// Catalog ids of equipment-compatible substitutions, best first
	Alternatives []string `json:"alternatives,omitempty"`
	// What to change next session, e.g. add 2.5 kg when all sets hit
	NextSessionHint string `json:"next_session_hint,omitempty"`
	// Longer-horizon progression guidance
	LongTermHint string `json:"long_term_hint,omitempty"`
	// Technique or adaptation notes attached by the adaptation chain
	Notes []string `json:"notes,omitempty"`
}

// AdaptationLog records why the generated plan deviates from the vanilla
// prescription, grouped by adaptation rule.
// @Description Reasons recorded by each adaptation rule.
type AdaptationLog struct {
	ReadinessAdjustments []string `json:"readiness_adjustments"`
	InjuryAdjustments    []string `json:"injury_adjustments"`
	EquipmentSwaps       []string `json:"equipment_swaps"`
	PlateauAdjustments   []string `json:"plateau_adjustments"`
}

// WorkoutMetadata aggregates plan-level numbers for display.
// @Description Aggregate numbers for a generated workout.
type WorkoutMetadata struct {
	// Total prescribed work sets across main exercises
	TotalSets int `json:"total_sets" example:"18"`
	// Mean target RPE across main exercises
	AvgIntensity float64 `json:"avg_intensity" example:"7.6"`
	// Work sets per primary muscle group
	MuscleGroupSets map[string]int `json:"muscle_group_sets"`
	GeneratedAt     time.Time      `json:"generated_at" example:"2024-03-02T08:00:00Z"`
}

// GeneratedWorkout is a fully adapted session plan.
// @Description Generated workout with warm-up, main block, cool-down and adaptations.
type GeneratedWorkout struct {
	ID          uuid.UUID   `json:"id"`
	UserID      string      `json:"user_id"`
	WorkoutType WorkoutType `json:"workout_type" example:"strength"`

	Warmup   []GeneratedExercise `json:"warmup"`
	Main     []GeneratedExercise `json:"main"`
	Cooldown []GeneratedExercise `json:"cooldown"`

	// Intensity band the session targets: light, moderate, hard or max
	TargetIntensity string `json:"target_intensity" example:"hard"`

	Adaptations AdaptationLog   `json:"adaptations"`
	Confidence  float64         `json:"confidence" example:"0.7" minimum:"0" maximum:"1"`
	Metadata    WorkoutMetadata `json:"metadata"`
}
