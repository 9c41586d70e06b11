package generator

import (
	"context"
	"testing"
	"time"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []domain.ExerciseCatalogEntry {
	return []domain.ExerciseCatalogEntry{
		{ID: "barbell-back-squat", Name: "Barbell Back Squat", Category: "compound", PrimaryMuscles: []string{"quads", "glutes"}, Equipment: []string{"barbell", "rack"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"goblet-squat", "air-squat"}},
		{ID: "goblet-squat", Name: "Goblet Squat", Category: "compound", PrimaryMuscles: []string{"quads"}, Equipment: []string{"dumbbell"}, Difficulty: domain.LevelBeginner, Alternatives: []string{"air-squat"}},
		{ID: "air-squat", Name: "Air Squat", Category: "compound", PrimaryMuscles: []string{"quads"}, Difficulty: domain.LevelBeginner},
		{ID: "bench-press", Name: "Bench Press", Category: "compound", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"triceps"}, Equipment: []string{"barbell", "bench"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"push-up"}},
		{ID: "push-up", Name: "Push-Up", Category: "compound", PrimaryMuscles: []string{"chest"}, Difficulty: domain.LevelBeginner},
		{ID: "deadlift", Name: "Deadlift", Category: "compound", PrimaryMuscles: []string{"hamstrings", "back"}, Equipment: []string{"barbell"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"dumbbell-rdl"}},
		{ID: "dumbbell-rdl", Name: "Dumbbell RDL", Category: "compound", PrimaryMuscles: []string{"hamstrings"}, Equipment: []string{"dumbbell"}, Difficulty: domain.LevelBeginner},
		{ID: "dumbbell-row", Name: "Dumbbell Row", Category: "compound", PrimaryMuscles: []string{"back"}, Equipment: []string{"dumbbell"}, Difficulty: domain.LevelBeginner},
		{ID: "pull-up", Name: "Pull-Up", Category: "compound", PrimaryMuscles: []string{"back"}, Equipment: []string{"pullup-bar"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"dumbbell-row"}},
		{ID: "overhead-press", Name: "Overhead Press", Category: "compound", PrimaryMuscles: []string{"shoulders"}, Equipment: []string{"barbell"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"pike-push-up"}},
		{ID: "pike-push-up", Name: "Pike Push-Up", Category: "compound", PrimaryMuscles: []string{"shoulders"}, Difficulty: domain.LevelBeginner},
		{ID: "plank", Name: "Plank", Category: "isolation", PrimaryMuscles: []string{"core"}, Difficulty: domain.LevelBeginner},
	}
}

func baseRequest() domain.WorkoutRequest {
	return domain.WorkoutRequest{
		UserID:                uuid.NewString(),
		WorkoutType:           domain.WorkoutStrength,
		TargetDurationMinutes: 60,
		AvailableEquipment:    []string{"barbell", "rack", "bench", "dumbbell", "pullup-bar"},
		FitnessLevel:          domain.LevelIntermediate,
	}
}

func stalledSessions() []domain.WorkoutSession {
	base := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	reps := 5
	var out []domain.WorkoutSession
	for i := 20; i > 0; i-- {
		w := 120.0
		r := 8.5
		out = append(out, domain.WorkoutSession{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			StartedAt: base.AddDate(0, 0, -(i*3 + i%2)),
			Exercises: []domain.ExerciseRecord{{
				ExerciseID: "barbell-back-squat",
				Name:       "Barbell Back Squat",
				Category:   "compound",
				Sets: []domain.SetRecord{
					{WeightKg: &w, Reps: &reps, RPE: &r, RestSeconds: 180},
					{WeightKg: &w, Reps: &reps, RPE: &r, RestSeconds: 180},
					{WeightKg: &w, Reps: &reps, RPE: &r, RestSeconds: 180},
				},
			}},
		})
	}
	return out
}

func TestGenerate(t *testing.T) {
	g := New()
	ctx := context.Background()

	t.Run("assembles a complete plan", func(t *testing.T) {
		w, err := g.Generate(ctx, baseRequest(), catalog(), nil, nil)
		require.NoError(t, err)

		assert.NotEmpty(t, w.Main)
		assert.LessOrEqual(t, len(w.Main), 8)
		require.NotEmpty(t, w.Warmup)
		assert.Equal(t, "warmup-general-mobility", w.Warmup[0].ExerciseID)
		assert.LessOrEqual(t, len(w.Warmup), 4)
		assert.Len(t, w.Cooldown, 5)

		assert.Equal(t, domain.WorkoutStrength, w.WorkoutType)
		assert.NotEmpty(t, w.TargetIntensity)
		assert.GreaterOrEqual(t, w.Confidence, 0.0)
		assert.LessOrEqual(t, w.Confidence, 1.0)

		for _, ex := range w.Main {
			assert.Equal(t, 3, ex.TargetRepsMin, ex.ExerciseID)
			assert.Equal(t, 6, ex.TargetRepsMax, ex.ExerciseID)
			assert.GreaterOrEqual(t, ex.TargetRPE, 1.0)
			assert.LessOrEqual(t, ex.TargetRPE, 10.0)
			assert.Greater(t, ex.TargetSets, 0)
		}

		assert.Greater(t, w.Metadata.TotalSets, 0)
		assert.NotEmpty(t, w.Metadata.MuscleGroupSets)
		assert.False(t, w.Metadata.GeneratedAt.IsZero())
	})

	t.Run("empty catalog fails with no candidates", func(t *testing.T) {
		_, err := g.Generate(ctx, baseRequest(), nil, nil, nil)
		assert.ErrorIs(t, err, domain.ErrNoCandidates)
	})

	t.Run("low readiness caps effort", func(t *testing.T) {
		req := baseRequest()
		readiness := 35.0
		req.CurrentReadiness = &readiness

		w, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		assert.NotEmpty(t, w.Adaptations.ReadinessAdjustments)
		for _, ex := range w.Main {
			assert.LessOrEqual(t, ex.TargetRPE, 7.0, ex.ExerciseID)
		}
	})

	t.Run("high readiness raises effort", func(t *testing.T) {
		req := baseRequest()
		readiness := 92.0
		req.CurrentReadiness = &readiness

		w, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		assert.NotEmpty(t, w.Adaptations.ReadinessAdjustments)
		for _, ex := range w.Main {
			assert.Equal(t, 9.0, ex.TargetRPE, ex.ExerciseID)
		}
	})

	t.Run("bodyweight only selects bodyweight exercises", func(t *testing.T) {
		req := baseRequest()
		req.AvailableEquipment = []string{"bodyweight"}

		w, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		for _, ex := range w.Main {
			assert.Empty(t, ex.Equipment, ex.ExerciseID)
		}
	})

	t.Run("excluded exercises never appear", func(t *testing.T) {
		req := baseRequest()
		req.ExcludeExercises = []string{"barbell-back-squat", "deadlift"}

		w, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		for _, ex := range w.Main {
			assert.NotEqual(t, "barbell-back-squat", ex.ExerciseID)
			assert.NotEqual(t, "deadlift", ex.ExerciseID)
		}
	})

	t.Run("beginner never gets intermediate exercises", func(t *testing.T) {
		req := baseRequest()
		req.FitnessLevel = domain.LevelBeginner

		w, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		intermediate := map[string]bool{
			"barbell-back-squat": true, "bench-press": true, "deadlift": true,
			"pull-up": true, "overhead-press": true,
		}
		for _, ex := range w.Main {
			assert.False(t, intermediate[ex.ExerciseID], ex.ExerciseID)
		}
	})

	t.Run("short session caps per-muscle slots", func(t *testing.T) {
		req := baseRequest()
		req.TargetDurationMinutes = 15
		req.TargetMuscleGroups = []string{"quads"}

		w, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		perMuscle := map[string]int{}
		for _, ex := range w.Main {
			for _, m := range ex.MuscleGroups {
				perMuscle[m]++
			}
		}
		for m, n := range perMuscle {
			assert.LessOrEqual(t, n, 1, m)
		}
	})

	t.Run("plateaued history triggers intensity techniques", func(t *testing.T) {
		w, err := g.Generate(ctx, baseRequest(), catalog(), nil, stalledSessions())
		require.NoError(t, err)

		assert.NotEmpty(t, w.Adaptations.PlateauAdjustments)
		require.NotEmpty(t, w.Main)
		assert.NotEmpty(t, w.Main[0].Notes)
	})

	t.Run("deterministic selection for identical input", func(t *testing.T) {
		req := baseRequest()
		first, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)
		second, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		require.Len(t, second.Main, len(first.Main))
		for i := range first.Main {
			assert.Equal(t, first.Main[i].ExerciseID, second.Main[i].ExerciseID)
		}
	})

	t.Run("hypertrophy uses its own rep ranges", func(t *testing.T) {
		req := baseRequest()
		req.WorkoutType = domain.WorkoutHypertrophy

		w, err := g.Generate(ctx, req, catalog(), nil, nil)
		require.NoError(t, err)

		for _, ex := range w.Main {
			assert.Equal(t, 8, ex.TargetRepsMin)
			assert.Equal(t, 12, ex.TargetRepsMax)
		}
	})
}
