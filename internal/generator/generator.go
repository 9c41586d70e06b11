// Package generator builds adapted workout plans from the exercise catalog
// and the analyzers' readiness, injury-risk and plateau verdicts.
package generator

import (
	"context"
	"sort"
	"time"

	"github.com/fitflow/fitflow/internal/analyzer"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/predictor"
	"github.com/fitflow/fitflow/internal/stats"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	maxMainExercises = 8
	// One exercise slot per 15 minutes of session, per muscle group.
	minutesPerMuscleSlot = 15
	defaultReadiness     = 65.0
)

// Generator turns a WorkoutRequest plus caller-supplied collections into a
// fully adapted session plan. Stateless; safe to share across requests.
type Generator struct {
	selection *predictor.ExerciseSelection
	optimizer *predictor.VolumeIntensity
	injury    *analyzer.InjuryRisk
	plateau   *analyzer.Plateau
}

func New() *Generator {
	return &Generator{
		selection: predictor.NewExerciseSelection(),
		optimizer: predictor.NewVolumeIntensity(),
		injury:    analyzer.NewInjuryRisk(),
		plateau:   analyzer.NewPlateau(),
	}
}

// Generate runs the full pipeline: analyze, select, prescribe, assemble,
// adapt. It fails only when no catalog exercise survives filtering.
func (g *Generator) Generate(
	ctx context.Context,
	req domain.WorkoutRequest,
	exercises []domain.ExerciseCatalogEntry,
	metrics []domain.DailyMetric,
	history []domain.WorkoutSession,
) (domain.GeneratedWorkout, error) {
	tracer := otel.Tracer("fitflow/generator")
	ctx, span := tracer.Start(ctx, "generator.Generate",
		trace.WithAttributes(
			attribute.String("workout.type", string(req.WorkoutType)),
			attribute.Int("catalog.size", len(exercises)),
		),
	)
	defer span.End()

	readiness := g.readiness(req, metrics)
	injuryReport := g.injury.Analyze(ctx, history, metrics)
	plateauReport := g.plateau.Analyze(ctx, history, metrics)

	selected, selConfidence := g.selectExercises(req, exercises, history, readiness)
	if len(selected) == 0 {
		return domain.GeneratedWorkout{}, domain.ErrNoCandidates
	}

	volumeScore, optConfidence := g.volumeTarget(readiness, history, injuryReport, plateauReport)
	main := g.prescribe(req, selected, volumeScore)

	workout := domain.GeneratedWorkout{
		ID:          uuid.New(),
		UserID:      req.UserID,
		WorkoutType: req.WorkoutType,
		Warmup:      g.warmup(main),
		Main:        main,
		Cooldown:    append([]domain.GeneratedExercise{}, cooldown...),
		Confidence:  stats.Clamp((selConfidence+optConfidence)/2, 0, 1),
		Adaptations: domain.AdaptationLog{
			ReadinessAdjustments: []string{},
			InjuryAdjustments:    []string{},
			EquipmentSwaps:       []string{},
			PlateauAdjustments:   []string{},
		},
	}

	g.adapt(&workout, readiness, injuryReport, plateauReport, req, exercises)
	workout.TargetIntensity = intensityBand(avgTargetRPE(workout.Main))
	workout.Metadata = metadata(workout.Main)

	span.SetAttributes(
		attribute.Int("workout.main_exercises", len(workout.Main)),
		attribute.Float64("workout.readiness", readiness),
	)
	return workout, nil
}

// readiness prefers the caller-supplied score, then the latest daily metric.
func (g *Generator) readiness(req domain.WorkoutRequest, metrics []domain.DailyMetric) float64 {
	if req.CurrentReadiness != nil {
		return stats.Clamp(*req.CurrentReadiness, 0, 100)
	}
	if len(metrics) == 0 {
		return defaultReadiness
	}
	sorted := domain.SortMetricsByDate(metrics)
	return feature.ReadinessScore(sorted[len(sorted)-1])
}

type scoredCandidate struct {
	entry      domain.ExerciseCatalogEntry
	score      float64
	confidence float64
}

// selectExercises filters by equipment, exclusion list and experience level,
// scores the survivors and greedily picks up to maxMainExercises while
// capping per-muscle-group slots.
func (g *Generator) selectExercises(
	req domain.WorkoutRequest,
	exercises []domain.ExerciseCatalogEntry,
	history []domain.WorkoutSession,
	readiness float64,
) ([]domain.ExerciseCatalogEntry, float64) {
	available := make(map[string]bool, len(req.AvailableEquipment))
	for _, eq := range req.AvailableEquipment {
		available[eq] = true
	}
	excluded := make(map[string]bool, len(req.ExcludeExercises))
	for _, id := range req.ExcludeExercises {
		excluded[id] = true
	}

	var candidates []scoredCandidate
	for _, e := range exercises {
		if excluded[e.ID] || !e.EquipmentSatisfiedBy(available) {
			continue
		}
		if levelRank(e.Difficulty) > levelRank(req.FitnessLevel) {
			continue
		}
		pred, err := g.selection.Predict(feature.Vector{
			{Name: predictor.FeatMuscleMatch, Value: muscleMatch(e, req.TargetMuscleGroups), Importance: 0.30, Category: feature.CategoryUser},
			{Name: predictor.FeatEquipmentFit, Value: 1, Importance: 0.25, Category: feature.CategoryUser},
			{Name: predictor.FeatExperienceMatch, Value: experienceMatch(e.Difficulty, req.FitnessLevel), Importance: 0.15, Category: feature.CategoryUser},
			{Name: feature.FeatReadinessScore, Value: readiness, Importance: 0.15, Category: feature.CategoryReadiness},
			{Name: predictor.FeatVariety, Value: varietyScore(e.ID, history), Importance: 0.15, Category: feature.CategoryPerformance},
		})
		if err != nil {
			continue
		}
		candidates = append(candidates, scoredCandidate{entry: e, score: pred.Value, confidence: pred.Confidence})
	}

	// Stable order: score descending, id ascending on ties, so identical
	// inputs reproduce identical plans.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].entry.ID < candidates[j].entry.ID
	})

	muscleCap := (req.TargetDurationMinutes + minutesPerMuscleSlot - 1) / minutesPerMuscleSlot
	perMuscle := map[string]int{}

	var picked []domain.ExerciseCatalogEntry
	var confidenceSum float64
	for _, c := range candidates {
		if len(picked) == maxMainExercises {
			break
		}
		if atMuscleCap(c.entry, perMuscle, muscleCap) {
			continue
		}
		picked = append(picked, c.entry)
		confidenceSum += c.confidence
		for _, m := range c.entry.PrimaryMuscles {
			perMuscle[m]++
		}
	}
	if len(picked) == 0 {
		return nil, 0
	}
	return picked, confidenceSum / float64(len(picked))
}

func atMuscleCap(e domain.ExerciseCatalogEntry, perMuscle map[string]int, limit int) bool {
	for _, m := range e.PrimaryMuscles {
		if perMuscle[m] >= limit {
			return true
		}
	}
	return false
}

// volumeTarget runs the volume-intensity optimizer over the current state.
func (g *Generator) volumeTarget(
	readiness float64,
	history []domain.WorkoutSession,
	injury domain.InjuryRiskReport,
	plateau domain.PlateauReport,
) (float64, float64) {
	plateauRisk := plateau.Strength.Probability
	if plateau.Volume.Probability > plateauRisk {
		plateauRisk = plateau.Volume.Probability
	}
	pred, err := g.optimizer.Predict(feature.Vector{
		{Name: feature.FeatReadinessScore, Value: readiness, Importance: 0.35, Category: feature.CategoryReadiness},
		{Name: predictor.FeatTrainingAge, Value: trainingAge(history), Importance: 0.25, Category: feature.CategoryUser},
		{Name: predictor.FeatRecoveryScore, Value: 100 - injury.ReadinessRisk, Importance: 0.25, Category: feature.CategoryReadiness},
		{Name: predictor.FeatPlateauRisk, Value: plateauRisk, Importance: 0.15, Category: feature.CategoryPerformance},
	})
	if err != nil {
		return 50, 0.3
	}
	return pred.Value, pred.Confidence
}

// prescribe turns selected catalog entries into set/rep/RPE prescriptions.
func (g *Generator) prescribe(req domain.WorkoutRequest, selected []domain.ExerciseCatalogEntry, volumeScore float64) []domain.GeneratedExercise {
	p := prescriptions[req.WorkoutType]
	sets := setsForVolumeScore(volumeScore)

	out := make([]domain.GeneratedExercise, 0, len(selected))
	for _, e := range selected {
		out = append(out, domain.GeneratedExercise{
			ExerciseID:      e.ID,
			Name:            e.Name,
			MuscleGroups:    append([]string{}, e.PrimaryMuscles...),
			Equipment:       append([]string{}, e.Equipment...),
			TargetSets:      sets,
			TargetRepsMin:   p.RepsMin,
			TargetRepsMax:   p.RepsMax,
			TargetRPE:       p.TargetRPE,
			RestSeconds:     p.RestSeconds,
			Alternatives:    append([]string{}, e.Alternatives...),
			NextSessionHint: p.NextHint,
			LongTermHint:    p.LongHint,
		})
	}
	return out
}

// warmup is the general mobility opener plus up to three muscle-specific
// activation items drawn from the selected exercises, in selection order.
func (g *Generator) warmup(main []domain.GeneratedExercise) []domain.GeneratedExercise {
	out := []domain.GeneratedExercise{generalWarmup}
	seen := map[string]bool{}
	for _, ex := range main {
		for _, m := range ex.MuscleGroups {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, muscleWarmup(m))
			if len(out) == 4 {
				return out
			}
		}
	}
	return out
}

func avgTargetRPE(main []domain.GeneratedExercise) float64 {
	if len(main) == 0 {
		return 0
	}
	var sum float64
	for _, ex := range main {
		sum += ex.TargetRPE
	}
	return sum / float64(len(main))
}

func metadata(main []domain.GeneratedExercise) domain.WorkoutMetadata {
	meta := domain.WorkoutMetadata{
		MuscleGroupSets: map[string]int{},
		GeneratedAt:     time.Now().UTC(),
	}
	for _, ex := range main {
		meta.TotalSets += ex.TargetSets
		for _, m := range ex.MuscleGroups {
			meta.MuscleGroupSets[m] += ex.TargetSets
		}
	}
	meta.AvgIntensity = avgTargetRPE(main)
	return meta
}

func levelRank(l domain.FitnessLevel) int {
	switch l {
	case domain.LevelBeginner:
		return 0
	case domain.LevelIntermediate:
		return 1
	case domain.LevelAdvanced:
		return 2
	default:
		return 1
	}
}

// muscleMatch: 1.0 on a primary-muscle hit, 0.5 on a secondary hit, 0.7
// neutral when the request has no target groups (full-body session).
func muscleMatch(e domain.ExerciseCatalogEntry, targets []string) float64 {
	if len(targets) == 0 {
		return 0.7
	}
	best := 0.0
	for _, t := range targets {
		for _, m := range e.PrimaryMuscles {
			if m == t {
				return 1.0
			}
		}
		for _, m := range e.SecondaryMuscles {
			if m == t && best < 0.5 {
				best = 0.5
			}
		}
	}
	return best
}

// experienceMatch rewards exercises at the lifter's level; easier ones still
// work but score lower. Harder ones are filtered before scoring.
func experienceMatch(difficulty, level domain.FitnessLevel) float64 {
	if levelRank(difficulty) == levelRank(level) {
		return 1.0
	}
	return 0.7
}

// varietyScore penalizes exercises the lifter has done recently.
func varietyScore(exerciseID string, history []domain.WorkoutSession) float64 {
	if len(history) == 0 {
		return 0.9
	}
	sorted := domain.SortSessionsByDate(history)
	for i := len(sorted) - 1; i >= 0; i-- {
		if !sorted[i].HasExercise(exerciseID) {
			continue
		}
		recency := len(sorted) - 1 - i
		switch {
		case recency < 3:
			return 0.2
		case recency < 10:
			return 0.5
		default:
			return 0.8
		}
	}
	return 0.9
}

// trainingAge in years, estimated from the span of the supplied history.
func trainingAge(history []domain.WorkoutSession) float64 {
	if len(history) < 2 {
		return 0.25
	}
	sorted := domain.SortSessionsByDate(history)
	span := sorted[len(sorted)-1].StartedAt.Sub(sorted[0].StartedAt)
	years := span.Hours() / (24 * 365)
	if years < 0.1 {
		return 0.1
	}
	return years
}
