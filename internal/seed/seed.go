// Package seed builds deterministic synthetic training data for demos and
// the engine health check. Everything derives from a caller-supplied seed,
// so the same seed always produces the same dataset.
package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/google/uuid"
)

// DefaultSeed keeps demo output stable across runs.
const DefaultSeed = 42

// Catalog returns a small fixed exercise catalog covering the main movement
// patterns with bodyweight fallbacks.
func Catalog() []domain.ExerciseCatalogEntry {
	return []domain.ExerciseCatalogEntry{
		{ID: "barbell-back-squat", Name: "Barbell Back Squat", Category: "compound", PrimaryMuscles: []string{"quads", "glutes"}, SecondaryMuscles: []string{"core"}, Equipment: []string{"barbell", "rack"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"goblet-squat", "air-squat"}},
		{ID: "goblet-squat", Name: "Goblet Squat", Category: "compound", PrimaryMuscles: []string{"quads"}, Equipment: []string{"dumbbell"}, Difficulty: domain.LevelBeginner, Alternatives: []string{"air-squat"}},
		{ID: "air-squat", Name: "Air Squat", Category: "compound", PrimaryMuscles: []string{"quads"}, Difficulty: domain.LevelBeginner},
		{ID: "bench-press", Name: "Bench Press", Category: "compound", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"triceps", "shoulders"}, Equipment: []string{"barbell", "bench"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"push-up"}},
		{ID: "push-up", Name: "Push-Up", Category: "compound", PrimaryMuscles: []string{"chest"}, SecondaryMuscles: []string{"triceps"}, Difficulty: domain.LevelBeginner},
		{ID: "deadlift", Name: "Deadlift", Category: "compound", PrimaryMuscles: []string{"hamstrings", "back"}, SecondaryMuscles: []string{"glutes"}, Equipment: []string{"barbell"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"dumbbell-rdl"}},
		{ID: "dumbbell-rdl", Name: "Dumbbell Romanian Deadlift", Category: "compound", PrimaryMuscles: []string{"hamstrings"}, Equipment: []string{"dumbbell"}, Difficulty: domain.LevelBeginner},
		{ID: "pull-up", Name: "Pull-Up", Category: "compound", PrimaryMuscles: []string{"back"}, SecondaryMuscles: []string{"biceps"}, Equipment: []string{"pullup-bar"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"dumbbell-row"}},
		{ID: "dumbbell-row", Name: "Dumbbell Row", Category: "compound", PrimaryMuscles: []string{"back"}, Equipment: []string{"dumbbell"}, Difficulty: domain.LevelBeginner},
		{ID: "overhead-press", Name: "Overhead Press", Category: "compound", PrimaryMuscles: []string{"shoulders"}, SecondaryMuscles: []string{"triceps"}, Equipment: []string{"barbell"}, Difficulty: domain.LevelIntermediate, Alternatives: []string{"pike-push-up"}},
		{ID: "pike-push-up", Name: "Pike Push-Up", Category: "compound", PrimaryMuscles: []string{"shoulders"}, Difficulty: domain.LevelBeginner},
		{ID: "plank", Name: "Plank", Category: "isolation", PrimaryMuscles: []string{"core"}, Difficulty: domain.LevelBeginner},
	}
}

// History fabricates a plausible training block: three sessions per week with
// slowly climbing weights, plus a daily metric per day. Deterministic for a
// given seed.
func History(userID string, weeks int, seed uint64) ([]domain.WorkoutSession, []domain.DailyMetric) {
	faker := gofakeit.New(int64(seed))
	end := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	uid := uuid.NewSHA1(uuid.NameSpaceOID, []byte(userID))

	var workouts []domain.WorkoutSession
	squat, bench, dead := 80.0, 60.0, 100.0
	for week := weeks - 1; week >= 0; week-- {
		for _, day := range []int{0, 2, 4} {
			start := end.AddDate(0, 0, -(week*7 + day))
			s := domain.WorkoutSession{
				ID:              uuid.NewSHA1(uid, []byte(start.Format(time.RFC3339))),
				UserID:          uid,
				StartedAt:       start,
				DurationMinutes: 55 + faker.Number(0, 20),
			}
			s.Exercises = []domain.ExerciseRecord{
				exercise(faker, "barbell-back-squat", "Barbell Back Squat", squat),
				exercise(faker, "bench-press", "Bench Press", bench),
				exercise(faker, "deadlift", "Deadlift", dead),
			}
			s.TotalVolumeKg = s.Volume()
			workouts = append(workouts, s)
		}
		squat += 1.25
		bench += 0.75
		dead += 1.5
	}

	days := weeks * 7
	metrics := make([]domain.DailyMetric, 0, days)
	for d := days - 1; d >= 0; d-- {
		weight := 82.0 - 0.02*float64(days-d)
		metrics = append(metrics, domain.DailyMetric{
			Date:         end.AddDate(0, 0, -d),
			SleepHours:   6.5 + faker.Float64Range(0, 2),
			Energy:       faker.Number(5, 9),
			Soreness:     faker.Number(2, 6),
			Stress:       faker.Number(2, 6),
			BodyWeightKg: &weight,
		})
	}

	return workouts, metrics
}

func exercise(faker *gofakeit.Faker, id, name string, weight float64) domain.ExerciseRecord {
	ex := domain.ExerciseRecord{ExerciseID: id, Name: name, Category: "compound"}
	for set := 0; set < 3; set++ {
		w := weight
		reps := 5
		rpe := 7 + faker.Float64Range(0, 1.5)
		ex.Sets = append(ex.Sets, domain.SetRecord{
			WeightKg:    &w,
			Reps:        &reps,
			RPE:         &rpe,
			RestSeconds: 180,
		})
	}
	return ex
}

// HealthCheckDataset is the fixed minimal dataset the engine exercises
// during a health check: enough history to drive every analyzer past its
// sparse-data defaults.
func HealthCheckDataset() ([]domain.WorkoutSession, []domain.DailyMetric, []domain.ExerciseCatalogEntry) {
	workouts, metrics := History("healthcheck", 6, DefaultSeed)
	return workouts, metrics, Catalog()
}
