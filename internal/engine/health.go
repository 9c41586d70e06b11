package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/seed"
	"go.uber.org/multierr"
)

// Analyzer confidence at or below this on the synthetic dataset means the
// subsystem fell back to its sparse-data default.
const degradedConfidence = 0.3

// HealthCheck exercises every analyzer and the generator against a fixed
// synthetic dataset. It never fails; a broken subsystem reports degraded or
// error instead.
func (e *Engine) HealthCheck(ctx context.Context) domain.EngineHealth {
	workouts, metricEntries, exercises := seed.HealthCheckDataset()

	health := domain.EngineHealth{LastHealthCheck: time.Now().UTC()}
	var problems error

	health.Progress, problems = component(problems, "progress", func() float64 {
		return e.progress.Analyze(ctx, workouts, metricEntries).Confidence
	})
	health.InjuryRisk, problems = component(problems, "injury_risk", func() float64 {
		return e.injury.Analyze(ctx, workouts, metricEntries).Confidence
	})
	health.PlateauDetection, problems = component(problems, "plateau_detection", func() float64 {
		return e.plateau.Analyze(ctx, workouts, metricEntries).Confidence
	})
	health.TrainingWindows, problems = component(problems, "training_windows", func() float64 {
		return e.window.Analyze(ctx, workouts).Confidence
	})
	health.WorkoutGeneration, problems = component(problems, "workout_generation", func() float64 {
		readiness := 70.0
		_, err := e.gen.Generate(ctx, domain.WorkoutRequest{
			UserID:                "healthcheck",
			WorkoutType:           domain.WorkoutStrength,
			TargetDurationMinutes: 60,
			AvailableEquipment:    []string{"barbell", "rack", "bench", "dumbbell", "pullup-bar"},
			FitnessLevel:          domain.LevelIntermediate,
			CurrentReadiness:      &readiness,
		}, exercises, metricEntries, workouts)
		if err != nil {
			panic(err)
		}
		return 1
	})

	degraded := 0
	for _, s := range []domain.ComponentStatus{
		health.Progress, health.InjuryRisk, health.PlateauDetection,
		health.TrainingWindows, health.WorkoutGeneration,
	} {
		if s != domain.StatusOperational {
			degraded++
		}
	}
	e.metrics.SetDegradedComponents(degraded)
	if problems != nil {
		e.log.WithError(problems).Warn("health check found degraded subsystems")
	}

	return health
}

// component runs one probe behind a panic boundary and grades the outcome.
func component(problems error, name string, probe func() float64) (status domain.ComponentStatus, err error) {
	err = problems
	defer func() {
		if r := recover(); r != nil {
			status = domain.StatusError
			err = multierr.Append(err, fmt.Errorf("%s: %v", name, r))
		}
	}()
	confidence := probe()
	if confidence <= degradedConfidence {
		return domain.StatusDegraded, multierr.Append(err, fmt.Errorf("%s: low-confidence output on synthetic data", name))
	}
	return domain.StatusOperational, err
}
