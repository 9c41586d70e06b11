package analyzer

import (
	"context"
	"fmt"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/predictor"
	"github.com/fitflow/fitflow/internal/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Progress combines the strength, volume and weight-loss predictors into one
// progress verdict.
type Progress struct {
	strength   *predictor.StrengthProgress
	volume     *predictor.VolumeProgression
	weightLoss *predictor.WeightLoss
}

func NewProgress() *Progress {
	return &Progress{
		strength:   predictor.NewStrengthProgress(),
		volume:     predictor.NewVolumeProgression(),
		weightLoss: predictor.NewWeightLoss(),
	}
}

// Default is the static report used when history cannot support analysis or
// the analysis itself fails.
func (a *Progress) Default() domain.ProgressReport {
	return domain.ProgressReport{
		StrengthTrend: domain.TrendUnknown,
		VolumeTrend:   domain.TrendUnknown,
		Evidence:      []string{"Not enough workout history for a progress assessment"},
		Interventions: []domain.Intervention{},
		Confidence:    0.3,
	}
}

// Analyze never returns an error; sparse history degrades to Default.
func (a *Progress) Analyze(ctx context.Context, workouts []domain.WorkoutSession, metrics []domain.DailyMetric) domain.ProgressReport {
	tracer := otel.Tracer("fitflow/analyzer")
	_, span := tracer.Start(ctx, "analyzer.Progress",
		trace.WithAttributes(
			attribute.Int("workouts.count", len(workouts)),
			attribute.Int("metrics.count", len(metrics)),
		),
	)
	defer span.End()

	if len(workouts) < 2 {
		return a.Default()
	}

	sorted := domain.SortSessionsByDate(workouts)

	vec := feature.ExtractPerformanceFeatures(sorted, "")
	vec = append(vec, feature.ExtractReadinessFeatures(metrics)...)
	vec = append(vec, feature.Feature{
		Name:       predictor.FeatTrainingAge,
		Value:      trainingAgeYears(sorted),
		Importance: 0.2,
		Category:   feature.CategoryUser,
	})

	strengthPred, _ := a.strength.Predict(vec)
	volumePred, _ := a.volume.Predict(vec)

	volumeTrend := vec.Value(feature.FeatVolumeTrend, 0)
	weeklyGain := strengthPred.Value

	report := domain.ProgressReport{
		StrengthTrend:      trendFor(weeklyGain, 0.3),
		VolumeTrend:        trendFor(volumeTrend, 0.1),
		WeeklyGainPct:      weeklyGain,
		Projected4WeekPct:  predictor.CompoundPct(weeklyGain, 4),
		Projected12WeekPct: predictor.CompoundPct(weeklyGain, 12),
		VolumeGrowthPct:    volumePred.Value,
		Confidence:         (strengthPred.Confidence + volumePred.Confidence) / 2,
	}

	report.Evidence = append(report.Evidence,
		fmt.Sprintf("Estimated weekly strength gain: %.1f%%", weeklyGain),
		fmt.Sprintf("Sustainable weekly volume growth: %.1f%%", volumePred.Value),
	)
	if freq, ok := vec.Get(feature.FeatFrequency); ok {
		report.Evidence = append(report.Evidence,
			fmt.Sprintf("Training frequency: %.1f sessions per week", freq.Value))
	}

	// Weight-loss projection only when the metrics carry a body weight.
	if loss, ok := a.analyzeWeightLoss(vec, metrics); ok {
		report.Evidence = append(report.Evidence,
			fmt.Sprintf("Projected weekly weight change: -%.2f kg", loss))
	}

	report.Interventions = progressInterventions(report)

	span.SetAttributes(attribute.Float64("progress.weekly_gain_pct", weeklyGain))
	return report
}

// analyzeWeightLoss estimates a caloric deficit from the observed body
// weight trend and runs the weight-loss predictor on it.
func (a *Progress) analyzeWeightLoss(vec feature.Vector, metrics []domain.DailyMetric) (float64, bool) {
	sorted := domain.SortMetricsByDate(metrics)

	var xs, weights []float64
	for _, m := range sorted {
		if m.BodyWeightKg == nil {
			continue
		}
		xs = append(xs, float64(len(xs)))
		weights = append(weights, *m.BodyWeightKg)
	}
	if len(weights) < 3 {
		return 0, false
	}

	reg := stats.LinearRegression(xs, weights)
	lossPerWeek := -reg.Slope * 7
	if lossPerWeek <= 0 {
		return 0, false
	}

	latest := weights[len(weights)-1]
	wlVec := append(feature.Vector{}, vec...)
	wlVec = append(wlVec,
		feature.Feature{Name: predictor.FeatCaloricDeficit, Value: lossPerWeek * 3500 / 7, Importance: 0.4, Category: feature.CategoryUser},
		feature.Feature{Name: predictor.FeatBMREstimate, Value: latest * 22, Importance: 0.2, Category: feature.CategoryUser},
		feature.Feature{Name: predictor.FeatConsistency, Value: consistencyFrom(vec), Importance: 0.15, Category: feature.CategoryUser},
	)

	pred, _ := a.weightLoss.Predict(wlVec)
	if pred.Value <= 0 {
		return 0, false
	}
	return pred.Value, true
}

func consistencyFrom(vec feature.Vector) float64 {
	freq := vec.Value(feature.FeatFrequency, 0)
	c := freq / 3
	if c > 1 {
		c = 1
	}
	return c
}

func trendFor(value, steadyBand float64) domain.Trend {
	switch {
	case value > steadyBand:
		return domain.TrendImproving
	case value < -steadyBand:
		return domain.TrendDeclining
	default:
		return domain.TrendSteady
	}
}

func progressInterventions(r domain.ProgressReport) []domain.Intervention {
	var out []domain.Intervention
	if r.StrengthTrend == domain.TrendDeclining {
		out = append(out, domain.Intervention{
			Action:               "Review programming: declining strength usually traces to accumulated fatigue or missing progressive overload",
			Priority:             domain.PriorityHigh,
			ExpectedDurationDays: 14,
			SuccessProbability:   0.65,
		})
	}
	if r.VolumeTrend == domain.TrendDeclining {
		out = append(out, domain.Intervention{
			Action:               "Rebuild weekly volume gradually toward the previous baseline",
			Priority:             domain.PriorityMedium,
			ExpectedDurationDays: 21,
			SuccessProbability:   0.7,
		})
	}
	if r.StrengthTrend == domain.TrendImproving && r.WeeklyGainPct > 1.5 {
		out = append(out, domain.Intervention{
			Action:               "Progress is well above expectation: hold the current plan",
			Priority:             domain.PriorityLow,
			ExpectedDurationDays: 28,
			SuccessProbability:   0.85,
		})
	}
	if out == nil {
		out = []domain.Intervention{}
	}
	return out
}
