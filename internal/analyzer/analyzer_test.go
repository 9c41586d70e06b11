package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/predictor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

// buildSession logs one squat session with 3 sets at the given weight.
func buildSession(daysAgo int, weight float64, rpe float64) domain.WorkoutSession {
	reps := 5
	sets := make([]domain.SetRecord, 3)
	for i := range sets {
		w := weight
		r := rpe
		sets[i] = domain.SetRecord{WeightKg: &w, Reps: &reps, RPE: &r, RestSeconds: 150}
	}
	return domain.WorkoutSession{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		StartedAt:       testBase.AddDate(0, 0, -daysAgo),
		DurationMinutes: 60,
		Exercises: []domain.ExerciseRecord{
			{ExerciseID: "squat", Name: "Squat", Category: "compound", Sets: sets},
		},
	}
}

// progressingHistory climbs 2.5 kg per session, twice a week for 12 weeks.
func progressingHistory() []domain.WorkoutSession {
	var out []domain.WorkoutSession
	weight := 100.0
	for i := 24; i > 0; i-- {
		out = append(out, buildSession(i*3+i%2, weight, 7.5))
		weight += 2.5
	}
	return out
}

// stalledHistory repeats the same weight for 10 weeks.
func stalledHistory() []domain.WorkoutSession {
	var out []domain.WorkoutSession
	for i := 20; i > 0; i-- {
		out = append(out, buildSession(i*3+i%2, 120, 8.5))
	}
	return out
}

func goodMetrics(days int) []domain.DailyMetric {
	out := make([]domain.DailyMetric, days)
	for i := 0; i < days; i++ {
		out[i] = domain.DailyMetric{
			Date:       testBase.AddDate(0, 0, -(days - 1 - i)),
			SleepHours: 7.8,
			Energy:     8,
			Soreness:   3,
			Stress:     3,
		}
	}
	return out
}

func poorMetrics(days int) []domain.DailyMetric {
	out := make([]domain.DailyMetric, days)
	for i := 0; i < days; i++ {
		out[i] = domain.DailyMetric{
			Date:       testBase.AddDate(0, 0, -(days - 1 - i)),
			SleepHours: 4.5,
			Energy:     3,
			Soreness:   8,
			Stress:     8,
		}
	}
	return out
}

func TestProgress(t *testing.T) {
	a := NewProgress()
	ctx := context.Background()

	t.Run("short history returns default", func(t *testing.T) {
		report := a.Analyze(ctx, []domain.WorkoutSession{buildSession(1, 100, 7)}, nil)
		assert.Equal(t, domain.TrendUnknown, report.StrengthTrend)
		assert.Equal(t, 0.3, report.Confidence)
		assert.NotEmpty(t, report.Evidence)
	})

	t.Run("progressing history trends up", func(t *testing.T) {
		report := a.Analyze(ctx, progressingHistory(), goodMetrics(10))
		assert.Equal(t, domain.TrendImproving, report.StrengthTrend)
		assert.Greater(t, report.WeeklyGainPct, 0.0)
		assert.Greater(t, report.Projected12WeekPct, report.Projected4WeekPct)
		assert.GreaterOrEqual(t, report.Confidence, 0.0)
		assert.LessOrEqual(t, report.Confidence, 1.0)
		assert.NotEmpty(t, report.Evidence)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		h := progressingHistory()
		m := goodMetrics(10)
		first := a.Analyze(ctx, h, m)
		second := a.Analyze(ctx, h, m)
		assert.Equal(t, first.WeeklyGainPct, second.WeeklyGainPct)
		assert.Equal(t, first.Projected12WeekPct, second.Projected12WeekPct)
	})
}

func TestInjuryRisk(t *testing.T) {
	a := NewInjuryRisk()
	ctx := context.Background()

	t.Run("no data returns default", func(t *testing.T) {
		report := a.Analyze(ctx, nil, nil)
		assert.Equal(t, 30.0, report.OverallRisk)
		assert.Equal(t, domain.RiskModerate, report.RiskLevel)
		assert.Equal(t, 0.3, report.Confidence)
		assert.NotEmpty(t, report.PreventionActions)
	})

	t.Run("balanced training scores low", func(t *testing.T) {
		report := a.Analyze(ctx, progressingHistory(), goodMetrics(10))
		assert.LessOrEqual(t, report.OverallRisk, 50.0)
		assert.GreaterOrEqual(t, report.OverallRisk, 0.0)
		assert.Greater(t, report.ACWR, 0.0)
	})

	t.Run("poor recovery raises readiness risk", func(t *testing.T) {
		good := a.Analyze(ctx, progressingHistory(), goodMetrics(10))
		bad := a.Analyze(ctx, progressingHistory(), poorMetrics(10))
		assert.Greater(t, bad.ReadinessRisk, good.ReadinessRisk)
		assert.Greater(t, bad.OverallRisk, good.OverallRisk)

		var codes []string
		for _, w := range bad.Warnings {
			codes = append(codes, w.Code)
		}
		assert.Contains(t, codes, "poor_recovery")
	})

	t.Run("acute spike triggers warning", func(t *testing.T) {
		// Four light weeks then a massive final week.
		var history []domain.WorkoutSession
		for i := 28; i > 7; i -= 3 {
			history = append(history, buildSession(i, 60, 6))
		}
		for i := 6; i >= 0; i-- {
			history = append(history, buildSession(i, 140, 9))
		}
		report := a.Analyze(ctx, history, goodMetrics(5))
		assert.Greater(t, report.ACWR, 1.5)

		var codes []string
		for _, w := range report.Warnings {
			codes = append(codes, w.Code)
		}
		assert.Contains(t, codes, "acute_spike")
	})

	t.Run("extra session at constant effort is not an intensity spike", func(t *testing.T) {
		// 3 sessions last week, 4 this week, every set at the same
		// weight and RPE. Weekly load grows a third, intensity does not.
		var history []domain.WorkoutSession
		for _, daysAgo := range []int{12, 10, 8, 6, 4, 2, 0} {
			history = append(history, buildSession(daysAgo, 100, 8))
		}
		sorted := domain.SortSessionsByDate(history)

		pct, ok := weekOverWeekMeanPct(sorted, avgSessionRPE)
		require.True(t, ok)
		assert.InDelta(t, 0, pct, 1e-9)

		vec := a.loadFeatures(sorted)
		assert.InDelta(t, 0, vec.Value(predictor.FeatIntensitySpikePct, -1), 1e-9)
		assert.InDelta(t, 100.0/3, vec.Value(predictor.FeatLoadSpikePct, 0), 1e-6,
			"total weekly load still grew with the added session")
	})

	t.Run("at most three prevention actions", func(t *testing.T) {
		report := a.Analyze(ctx, stalledHistory(), poorMetrics(10))
		assert.LessOrEqual(t, len(report.PreventionActions), 3)
	})
}

func TestPlateau(t *testing.T) {
	a := NewPlateau()
	ctx := context.Background()

	t.Run("fewer than three workouts returns default", func(t *testing.T) {
		report := a.Analyze(ctx, []domain.WorkoutSession{buildSession(1, 100, 7), buildSession(3, 100, 7)}, nil)
		assert.False(t, report.Strength.Detected)
		assert.Equal(t, domain.PlateauNone, report.Strength.Severity)
		assert.Equal(t, 0.3, report.Confidence)
	})

	t.Run("stalled history detects strength plateau", func(t *testing.T) {
		report := a.Analyze(ctx, stalledHistory(), poorMetrics(10))
		assert.True(t, report.Strength.Detected)
		assert.Greater(t, report.Strength.Probability, 60.0)
		assert.NotEqual(t, domain.PlateauNone, report.Strength.Severity)
		assert.NotEmpty(t, report.Interventions)
	})

	t.Run("progressing history does not", func(t *testing.T) {
		report := a.Analyze(ctx, progressingHistory(), goodMetrics(10))
		assert.False(t, report.Strength.Detected)
	})

	t.Run("probabilities stay in range", func(t *testing.T) {
		for _, history := range [][]domain.WorkoutSession{stalledHistory(), progressingHistory()} {
			report := a.Analyze(ctx, history, nil)
			assert.GreaterOrEqual(t, report.Strength.Probability, 0.0)
			assert.LessOrEqual(t, report.Strength.Probability, 100.0)
			assert.GreaterOrEqual(t, report.Volume.Probability, 0.0)
			assert.LessOrEqual(t, report.Volume.Probability, 100.0)
		}
	})
}

func TestTrainingWindow(t *testing.T) {
	a := NewTrainingWindow()
	ctx := context.Background()

	t.Run("short history returns evening default", func(t *testing.T) {
		report := a.Analyze(ctx, nil)
		assert.Equal(t, "evening", report.Primary.TimeOfDay)
		assert.Equal(t, 0.3, report.Confidence)
	})

	t.Run("morning lifter detected", func(t *testing.T) {
		var history []domain.WorkoutSession
		for i := 0; i < 10; i++ {
			s := buildSession(i*2, 100, 7)
			s.StartedAt = time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC).AddDate(0, 0, -i*2)
			history = append(history, s)
		}
		report := a.Analyze(ctx, history)
		assert.Equal(t, "morning", report.Primary.TimeOfDay)
		assert.Equal(t, 10, report.SampleSize)
		assert.InDelta(t, 1.0, report.Primary.SessionShare, 1e-9)
		assert.GreaterOrEqual(t, report.Confidence, 0.85)
	})

	t.Run("deterministic primary window", func(t *testing.T) {
		history := progressingHistory()
		first := a.Analyze(ctx, history)
		second := a.Analyze(ctx, history)
		require.Equal(t, first.Primary.TimeOfDay, second.Primary.TimeOfDay)
	})
}
