package analyzer

import (
	"context"
	"fmt"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/predictor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// minSessionsForPlateau: under three sessions nothing can stall.
const minSessionsForPlateau = 3

// Plateau runs the independent strength and volume detectors.
type Plateau struct {
	strength *predictor.StrengthPlateau
	volume   *predictor.VolumePlateau
}

func NewPlateau() *Plateau {
	return &Plateau{
		strength: predictor.NewStrengthPlateau(),
		volume:   predictor.NewVolumePlateau(),
	}
}

// Default is the static report used when history cannot support detection.
func (a *Plateau) Default() domain.PlateauReport {
	return domain.PlateauReport{
		Strength:      domain.PlateauVerdict{Severity: domain.PlateauNone},
		Volume:        domain.PlateauVerdict{Severity: domain.PlateauNone},
		Evidence:      []string{"Fewer than 3 workouts on record; plateau detection needs more history"},
		Interventions: []domain.Intervention{},
		Confidence:    0.3,
	}
}

// Analyze never returns an error; short history degrades to Default.
func (a *Plateau) Analyze(ctx context.Context, workouts []domain.WorkoutSession, metrics []domain.DailyMetric) domain.PlateauReport {
	tracer := otel.Tracer("fitflow/analyzer")
	_, span := tracer.Start(ctx, "analyzer.Plateau",
		trace.WithAttributes(attribute.Int("workouts.count", len(workouts))),
	)
	defer span.End()

	if len(workouts) < minSessionsForPlateau {
		return a.Default()
	}

	sorted := domain.SortSessionsByDate(workouts)
	age := trainingAgeYears(sorted)
	volumeTrendVal := feature.ExtractPerformanceFeatures(sorted, "").Value(feature.FeatVolumeTrend, 0)
	readyTrend, _ := readinessTrend(metrics)

	strengthDays := daysSinceImprovement(sorted)
	strengthVec := plateauVector(weeklyProgressPct(sorted), strengthDays, age, volumeTrendVal, readyTrend)

	volumeDays := daysSinceVolumeImprovement(sorted)
	volumeVec := plateauVector(weeklyVolumeProgressPct(sorted), volumeDays, age, volumeTrendVal, readyTrend)

	strengthPred, _ := a.strength.Predict(strengthVec)
	volumePred, _ := a.volume.Predict(volumeVec)

	report := domain.PlateauReport{
		Strength:   verdictFor(strengthPred.Value, a.strength.Threshold(), strengthDays),
		Volume:     verdictFor(volumePred.Value, a.volume.Threshold(), volumeDays),
		Confidence: (strengthPred.Confidence + volumePred.Confidence) / 2,
	}

	report.Evidence = []string{
		fmt.Sprintf("Strength plateau probability %.0f%%, last meaningful PR %d days ago", strengthPred.Value, strengthDays),
		fmt.Sprintf("Volume plateau probability %.0f%%", volumePred.Value),
	}
	report.Interventions = plateauInterventions(report)

	span.SetAttributes(
		attribute.Float64("plateau.strength_probability", strengthPred.Value),
		attribute.Float64("plateau.volume_probability", volumePred.Value),
	)
	return report
}

func plateauVector(progressPct float64, daysSince int, age, volumeTrend, readyTrend float64) feature.Vector {
	return feature.Vector{
		{Name: predictor.FeatWeeklyProgressPct, Value: progressPct, Importance: 0.4, Category: feature.CategoryPerformance},
		{Name: predictor.FeatDaysSinceImprovement, Value: float64(daysSince), Importance: 0.25, Category: feature.CategoryPerformance},
		{Name: predictor.FeatTrainingAge, Value: age, Importance: 0.15, Category: feature.CategoryUser},
		{Name: feature.FeatVolumeTrend, Value: volumeTrend, Importance: 0.1, Category: feature.CategoryPerformance},
		{Name: predictor.FeatReadinessTrend, Value: readyTrend, Importance: 0.1, Category: feature.CategoryReadiness},
	}
}

func verdictFor(probability, threshold float64, durationDays int) domain.PlateauVerdict {
	v := domain.PlateauVerdict{
		Probability:  probability,
		Severity:     domain.PlateauNone,
		DurationDays: durationDays,
	}
	if probability > threshold {
		v.Detected = true
		v.Severity = predictor.SeverityFor(probability, durationDays)
	}
	return v
}

func plateauInterventions(r domain.PlateauReport) []domain.Intervention {
	out := []domain.Intervention{}

	if r.Strength.Detected {
		deload := domain.Intervention{
			Action:               "Run a deload week at 60% volume, then rotate main lift variations",
			Priority:             domain.PriorityMedium,
			ExpectedDurationDays: 7,
			SuccessProbability:   0.7,
		}
		if r.Strength.Severity == domain.PlateauSevere || r.Strength.Severity == domain.PlateauChronic {
			deload.Priority = domain.PriorityHigh
			deload.ExpectedDurationDays = 14
			deload.SuccessProbability = 0.6
		}
		out = append(out, deload)
	}

	if r.Volume.Detected {
		out = append(out, domain.Intervention{
			Action:               "Add one weekly set per stalled muscle group for three weeks, then reassess",
			Priority:             domain.PriorityMedium,
			ExpectedDurationDays: 21,
			SuccessProbability:   0.65,
		})
	}

	return out
}
