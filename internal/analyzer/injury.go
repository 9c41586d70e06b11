package analyzer

import (
	"context"
	"fmt"
	"sort"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/predictor"
	"github.com/fitflow/fitflow/internal/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InjuryRisk combines the training-load, readiness and movement-quality
// predictors into one 0-100 verdict with structured warnings.
type InjuryRisk struct {
	trainingLoad    *predictor.TrainingLoadRisk
	readiness       *predictor.ReadinessRisk
	movementQuality *predictor.MovementQualityRisk
}

func NewInjuryRisk() *InjuryRisk {
	return &InjuryRisk{
		trainingLoad:    predictor.NewTrainingLoadRisk(),
		readiness:       predictor.NewReadinessRisk(),
		movementQuality: predictor.NewMovementQualityRisk(),
	}
}

// Default is the static report used when no signal is available at all.
func (a *InjuryRisk) Default() domain.InjuryRiskReport {
	return domain.InjuryRiskReport{
		OverallRisk:         30,
		RiskLevel:           domain.RiskModerate,
		TrainingLoadRisk:    30,
		ReadinessRisk:       40,
		MovementQualityRisk: 25,
		Warnings:            []domain.RiskWarning{},
		PreventionActions:   []string{"Track workouts and daily metrics to unlock injury-risk monitoring"},
		Evidence:            []string{"No training or wellness history available"},
		Confidence:          0.3,
	}
}

// Analyze never returns an error; empty input degrades to Default.
func (a *InjuryRisk) Analyze(ctx context.Context, workouts []domain.WorkoutSession, metrics []domain.DailyMetric) domain.InjuryRiskReport {
	tracer := otel.Tracer("fitflow/analyzer")
	_, span := tracer.Start(ctx, "analyzer.InjuryRisk",
		trace.WithAttributes(
			attribute.Int("workouts.count", len(workouts)),
			attribute.Int("metrics.count", len(metrics)),
		),
	)
	defer span.End()

	if len(workouts) == 0 && len(metrics) == 0 {
		return a.Default()
	}

	sorted := domain.SortSessionsByDate(workouts)
	loadVec := a.loadFeatures(sorted)
	readyVec := feature.ExtractReadinessFeatures(metrics)
	moveVec := a.movementFeatures(sorted)

	loadPred, _ := a.trainingLoad.Predict(loadVec)
	readyPred, _ := a.readiness.Predict(readyVec)
	movePred, _ := a.movementQuality.Predict(moveVec)

	overall := stats.Clamp(
		loadPred.Value*predictor.TrainingLoadWeight+
			readyPred.Value*predictor.ReadinessRiskWeight+
			movePred.Value*predictor.MovementQualityWeight,
		0, 100)

	report := domain.InjuryRiskReport{
		OverallRisk:         overall,
		RiskLevel:           domain.RiskLevelFor(overall),
		TrainingLoadRisk:    loadPred.Value,
		ReadinessRisk:       readyPred.Value,
		MovementQualityRisk: movePred.Value,
		ACWR:                loadVec.Value(predictor.FeatACWR, 0),
		Confidence: loadPred.Confidence*predictor.TrainingLoadWeight +
			readyPred.Confidence*predictor.ReadinessRiskWeight +
			movePred.Confidence*predictor.MovementQualityWeight,
	}

	report.Warnings = a.warnings(report, loadVec, readyVec, moveVec)
	report.PreventionActions = preventionActions(report)
	report.Evidence = a.evidence(report)

	span.SetAttributes(
		attribute.Float64("injury.overall_risk", overall),
		attribute.String("injury.risk_level", string(report.RiskLevel)),
	)
	return report
}

func (a *InjuryRisk) loadFeatures(sorted []domain.WorkoutSession) feature.Vector {
	var vec feature.Vector
	if ratio, _, _, ok := acuteChronicRatio(sorted); ok {
		vec = append(vec, feature.Feature{
			Name: predictor.FeatACWR, Value: ratio, Importance: 0.6, Category: feature.CategoryPerformance,
		})
	}
	if spike, ok := weekOverWeekPct(sorted, domain.WorkoutSession.Volume); ok {
		vec = append(vec, feature.Feature{
			Name: predictor.FeatLoadSpikePct, Value: spike, Importance: 0.25, Category: feature.CategoryPerformance,
		})
	}
	// Intensity compares per-session means, so an extra session at the
	// same effort is a load change, not an intensity change.
	if spike, ok := weekOverWeekMeanPct(sorted, avgSessionRPE); ok {
		vec = append(vec, feature.Feature{
			Name: predictor.FeatIntensitySpikePct, Value: spike, Importance: 0.15, Category: feature.CategoryPerformance,
		})
	}
	return vec
}

func avgSessionRPE(w domain.WorkoutSession) float64 {
	if w.AvgRPE != nil {
		return *w.AvgRPE
	}
	var sum float64
	var n int
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.RPE != nil {
				sum += *s.RPE
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (a *InjuryRisk) movementFeatures(sorted []domain.WorkoutSession) feature.Vector {
	var vec feature.Vector
	if spread, ok := rpeSpread(sorted); ok {
		vec = append(vec, feature.Feature{
			Name: predictor.FeatRPEInconsistency, Value: spread, Importance: 0.3, Category: feature.CategoryPerformance,
		})
	}
	if share, ok := grinderSetShare(sorted); ok {
		vec = append(vec, feature.Feature{
			Name: predictor.FeatGrinderSetShare, Value: share, Importance: 0.3, Category: feature.CategoryPerformance,
		})
	}
	if pct := weeklyProgressPct(sorted); pct != 0 {
		vec = append(vec, feature.Feature{
			Name: predictor.FeatWeeklyProgressPct, Value: pct, Importance: 0.3, Category: feature.CategoryPerformance,
		})
	}
	return vec
}

// Warning trigger thresholds. Tunable parameters.
const (
	acuteSpikeACWR       = 1.5
	poorRecoveryRisk     = 60.0
	chronicFatigueTrend  = -0.25
	rapidProgressionPct  = 3.5
	erraticEffortStdDev  = 1.8
	detrainedACWRCeiling = 0.8
)

func (a *InjuryRisk) warnings(r domain.InjuryRiskReport, loadVec, readyVec, moveVec feature.Vector) []domain.RiskWarning {
	warnings := []domain.RiskWarning{}

	if acwr, ok := loadVec.Get(predictor.FeatACWR); ok {
		if acwr.Value > acuteSpikeACWR {
			warnings = append(warnings, domain.RiskWarning{
				Code:     "acute_spike",
				Message:  fmt.Sprintf("Acute training load is %.1fx your chronic baseline", acwr.Value),
				Severity: domain.RiskLevelFor(r.TrainingLoadRisk),
			})
		} else if acwr.Value < detrainedACWRCeiling && acwr.Value > 0 {
			warnings = append(warnings, domain.RiskWarning{
				Code:     "detraining",
				Message:  "Recent training load is well below your chronic baseline; returning too fast raises risk",
				Severity: domain.RiskModerate,
			})
		}
	}

	if r.ReadinessRisk >= poorRecoveryRisk {
		warnings = append(warnings, domain.RiskWarning{
			Code:     "poor_recovery",
			Message:  "Sleep, stress or soreness indicate incomplete recovery",
			Severity: domain.RiskLevelFor(r.ReadinessRisk),
		})
	}

	if sleepTrend, ok := readyVec.Get(feature.FeatSleepTrend); ok && sleepTrend.Value < chronicFatigueTrend {
		warnings = append(warnings, domain.RiskWarning{
			Code:     "chronic_fatigue",
			Message:  "Sleep has been trending down across the week",
			Severity: domain.RiskModerate,
		})
	}

	if pct, ok := moveVec.Get(predictor.FeatWeeklyProgressPct); ok && pct.Value > rapidProgressionPct {
		warnings = append(warnings, domain.RiskWarning{
			Code:     "rapid_progression",
			Message:  fmt.Sprintf("Working weights are climbing %.1f%% per week, faster than connective tissue adapts", pct.Value),
			Severity: domain.RiskLevelFor(r.MovementQualityRisk),
		})
	}

	if spread, ok := moveVec.Get(predictor.FeatRPEInconsistency); ok && spread.Value > erraticEffortStdDev {
		warnings = append(warnings, domain.RiskWarning{
			Code:     "erratic_effort",
			Message:  "Reported effort swings widely between comparable sets",
			Severity: domain.RiskModerate,
		})
	}

	return warnings
}

// preventionActions returns at most 3 actions, highest-impact factor first.
func preventionActions(r domain.InjuryRiskReport) []string {
	type scored struct {
		score  float64
		action string
	}
	candidates := []scored{
		{r.TrainingLoadRisk, "Cap weekly load increases at 10% until the acute:chronic ratio settles below 1.3"},
		{r.ReadinessRisk, "Prioritize 8 hours of sleep and push the next hard session until readiness recovers"},
		{r.MovementQualityRisk, "Drop working weight 10% and rebuild with strict technique"},
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	actions := []string{}
	for _, c := range candidates {
		if c.score < 35 || len(actions) == 3 {
			continue
		}
		actions = append(actions, c.action)
	}
	if len(actions) == 0 && r.OverallRisk > 0 {
		actions = append(actions, "Maintain the current balance of load and recovery")
	}
	return actions
}

func (a *InjuryRisk) evidence(r domain.InjuryRiskReport) []string {
	ev := []string{
		fmt.Sprintf("Training load risk %.0f, readiness risk %.0f, movement quality risk %.0f", r.TrainingLoadRisk, r.ReadinessRisk, r.MovementQualityRisk),
	}
	if r.ACWR > 0 {
		ev = append(ev, fmt.Sprintf("Acute:chronic workload ratio %.2f", r.ACWR))
	}
	return ev
}
