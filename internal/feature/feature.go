// Package feature turns raw wellness metrics and workout history into the
// named, weighted feature vectors the predictors consume.
package feature

import (
	"math"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/stats"
)

// Category tags where a feature comes from.
type Category string

const (
	CategoryTemporal    Category = "temporal"
	CategoryReadiness   Category = "readiness"
	CategoryPerformance Category = "performance"
	CategoryUser        Category = "user"
	CategoryExercise    Category = "exercise"
)

// Feature is one named input to a predictor. Importance is a soft prior in
// [0,1]; a vector's importances are not required to sum to 1.
type Feature struct {
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	Importance float64  `json:"importance"`
	Category   Category `json:"category"`
}

// Canonical feature names shared between the extractor and the predictors.
const (
	FeatCurrentSleep      = "current_sleep"
	FeatCurrentEnergy     = "current_energy"
	FeatSorenessInverted  = "soreness_inverted"
	FeatStressInverted    = "stress_inverted"
	FeatReadinessScore    = "readiness_score"
	FeatSleepTrend        = "sleep_trend"
	FeatEnergyTrend       = "energy_trend"
	FeatSleepVariability  = "sleep_variability"
	FeatEnergyVariability = "energy_variability"
	FeatDayOfWeek         = "day_of_week"

	FeatRecentVolume    = "recent_volume"
	FeatAvgVolume       = "avg_volume"
	FeatVolumeTrend     = "volume_trend"
	FeatVolumeLagRatio  = "volume_lag_ratio"
	FeatAvgRPE          = "avg_rpe"
	FeatFrequency       = "workout_frequency"
	FeatSessionGapHours = "session_gap_hours"
)

// Fixed importances of the current-state readiness features.
// Tunable parameters, kept verbatim from the original scoring model.
const (
	importanceSleep    = 0.35
	importanceEnergy   = 0.25
	importanceSoreness = 0.20
	importanceStress   = 0.15

	// Soft priors for the derived features.
	importanceTrend       = 0.10
	importanceVariability = 0.05
	importanceTemporal    = 0.05

	// targetSleepHours anchors the sleep part of the readiness score.
	targetSleepHours = 8.0

	trendWindowDays    = 7
	minEntriesForTrend = 3
	minEntriesForStd   = 5
)

// Vector is a feature list with name-based access.
type Vector []Feature

// Get returns the named feature and whether it is present.
func (v Vector) Get(name string) (Feature, bool) {
	for _, f := range v {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// Value returns the named feature's value, or the fallback when absent.
func (v Vector) Value(name string, fallback float64) float64 {
	if f, ok := v.Get(name); ok {
		return f.Value
	}
	return fallback
}

// ReadinessScore folds one day's metrics into a 0-100 recovery proxy using
// the fixed sleep/energy/soreness/stress weights.
func ReadinessScore(m domain.DailyMetric) float64 {
	sleepPart := stats.Clamp(m.SleepHours/targetSleepHours, 0, 1)
	energyPart := stats.Clamp(float64(m.Energy)/10, 0, 1)
	sorenessPart := stats.Clamp(float64(10-m.Soreness)/10, 0, 1)
	stressPart := stats.Clamp(float64(10-m.Stress)/10, 0, 1)

	weighted := sleepPart*importanceSleep +
		energyPart*importanceEnergy +
		sorenessPart*importanceSoreness +
		stressPart*importanceStress
	total := importanceSleep + importanceEnergy + importanceSoreness + importanceStress

	return 100 * weighted / total
}

// ExtractReadinessFeatures builds the readiness feature vector from daily
// metrics. Empty input yields an empty vector, never an error: callers treat
// "no features" as insufficient data.
func ExtractReadinessFeatures(metrics []domain.DailyMetric) Vector {
	if len(metrics) == 0 {
		return nil
	}

	sorted := domain.SortMetricsByDate(metrics)
	latest := sorted[len(sorted)-1]

	vec := Vector{
		{Name: FeatCurrentSleep, Value: latest.SleepHours, Importance: importanceSleep, Category: CategoryReadiness},
		{Name: FeatCurrentEnergy, Value: float64(latest.Energy), Importance: importanceEnergy, Category: CategoryReadiness},
		{Name: FeatSorenessInverted, Value: float64(10 - latest.Soreness), Importance: importanceSoreness, Category: CategoryReadiness},
		{Name: FeatStressInverted, Value: float64(10 - latest.Stress), Importance: importanceStress, Category: CategoryReadiness},
		{Name: FeatReadinessScore, Value: ReadinessScore(latest), Importance: importanceSleep, Category: CategoryReadiness},
	}

	recent := lastDays(sorted, trendWindowDays)
	if len(recent) >= minEntriesForTrend {
		xs := make([]float64, len(recent))
		sleeps := make([]float64, len(recent))
		energies := make([]float64, len(recent))
		for i, m := range recent {
			xs[i] = float64(i)
			sleeps[i] = m.SleepHours
			energies[i] = float64(m.Energy)
		}

		sleepReg := stats.LinearRegression(xs, sleeps)
		energyReg := stats.LinearRegression(xs, energies)
		vec = append(vec,
			Feature{Name: FeatSleepTrend, Value: boundedTrend(sleepReg), Importance: importanceTrend, Category: CategoryReadiness},
			Feature{Name: FeatEnergyTrend, Value: boundedTrend(energyReg), Importance: importanceTrend, Category: CategoryReadiness},
		)

		if len(recent) >= minEntriesForStd {
			vec = append(vec,
				Feature{Name: FeatSleepVariability, Value: stats.StdDev(sleeps), Importance: importanceVariability, Category: CategoryReadiness},
				Feature{Name: FeatEnergyVariability, Value: stats.StdDev(energies), Importance: importanceVariability, Category: CategoryReadiness},
			)
		}
	}

	vec = append(vec, Feature{
		Name:       FeatDayOfWeek,
		Value:      float64(latest.Date.Weekday()),
		Importance: importanceTemporal,
		Category:   CategoryTemporal,
	})

	return vec
}

// boundedTrend squashes a regression slope into [-1,1], discounted by the
// fit's confidence so noisy trends shrink toward 0.
func boundedTrend(r stats.Regression) float64 {
	return math.Tanh(r.Slope * r.Confidence)
}

// ExtractPerformanceFeatures builds the performance feature vector from
// workout history. When exerciseID is non-empty only sessions containing
// that exercise count. Empty history yields an empty vector.
func ExtractPerformanceFeatures(workouts []domain.WorkoutSession, exerciseID string) Vector {
	if len(workouts) == 0 {
		return nil
	}

	sessions := workouts
	if exerciseID != "" {
		sessions = nil
		for _, w := range workouts {
			if w.HasExercise(exerciseID) {
				sessions = append(sessions, w)
			}
		}
	}
	if len(sessions) == 0 {
		return nil
	}

	sorted := domain.SortSessionsByDate(sessions)

	// Per-workout volume over the 5 most recent sessions.
	recent := sorted
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	volumes := make([]float64, len(recent))
	for i, w := range recent {
		volumes[i] = w.Volume()
	}

	vec := Vector{
		{Name: FeatRecentVolume, Value: volumes[len(volumes)-1], Importance: 0.30, Category: CategoryPerformance},
		{Name: FeatAvgVolume, Value: stats.Mean(volumes), Importance: 0.25, Category: CategoryPerformance},
	}

	if len(volumes) >= 2 {
		xs := make([]float64, len(volumes))
		for i := range xs {
			xs[i] = float64(i)
		}
		reg := stats.LinearRegression(xs, volumes)
		trend := 0.0
		if mean := stats.Mean(volumes); mean > 0 {
			trend = math.Tanh(reg.Slope / mean * reg.Confidence * 10)
		}
		vec = append(vec, Feature{Name: FeatVolumeTrend, Value: trend, Importance: 0.25, Category: CategoryPerformance})

		// Lag feature: how the latest session compares to the one before.
		prev := volumes[len(volumes)-2]
		if prev > 0 {
			vec = append(vec, Feature{
				Name:       FeatVolumeLagRatio,
				Value:      volumes[len(volumes)-1] / prev,
				Importance: 0.10,
				Category:   CategoryPerformance,
			})
		}
	}

	if rpe, ok := averageRPE(recent); ok {
		vec = append(vec, Feature{Name: FeatAvgRPE, Value: rpe, Importance: 0.20, Category: CategoryPerformance})
	}

	if len(sorted) >= 2 {
		first := sorted[0].StartedAt
		last := sorted[len(sorted)-1].StartedAt
		weeks := last.Sub(first).Hours() / (24 * 7)
		if weeks < 1 {
			weeks = 1
		}
		vec = append(vec, Feature{
			Name:       FeatFrequency,
			Value:      float64(len(sorted)) / weeks,
			Importance: 0.15,
			Category:   CategoryPerformance,
		})

		gap := meanGapHours(sorted)
		vec = append(vec, Feature{Name: FeatSessionGapHours, Value: gap, Importance: 0.10, Category: CategoryPerformance})
	}

	return vec
}

// averageRPE averages RPE across all sets of the given sessions, skipping
// sets without one. Zero-volume or unrated sets never fail the computation.
func averageRPE(sessions []domain.WorkoutSession) (float64, bool) {
	var sum float64
	var count int
	for _, w := range sessions {
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if s.RPE != nil {
					sum += *s.RPE
					count++
				}
			}
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func meanGapHours(sorted []domain.WorkoutSession) float64 {
	if len(sorted) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(sorted); i++ {
		total += sorted[i].StartedAt.Sub(sorted[i-1].StartedAt).Hours()
	}
	return total / float64(len(sorted)-1)
}

// lastDays keeps metrics dated within the trailing window of the given
// number of calendar days, counting the most recent entry's day as day one.
func lastDays(sorted []domain.DailyMetric, days int) []domain.DailyMetric {
	if len(sorted) == 0 {
		return nil
	}
	cutoff := sorted[len(sorted)-1].Date.AddDate(0, 0, -(days - 1))
	var out []domain.DailyMetric
	for _, m := range sorted {
		if !m.Date.Before(cutoff) {
			out = append(out, m)
		}
	}
	return out
}
