// Package predictor holds the closed set of heuristic scoring models. Each
// predictor is a strategy object sharing one contract: it declares the
// features it expects and maps a feature vector to a Prediction. None of
// them are trained; every "model" is a closed-form scoring function whose
// constants are tunable parameters preserved from the original design.
package predictor

import (
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/stats"
)

// Attribution explains one feature's share of a prediction.
type Attribution struct {
	Feature      string  `json:"feature"`
	Contribution float64 `json:"contribution"`
	// Importance values of one prediction sum to <= 1 by construction
	Importance float64 `json:"importance"`
}

// Prediction is the typed output every predictor produces.
type Prediction struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
	Variance   float64 `json:"variance"`
	// Per-feature attribution of the value
	Attributions []Attribution `json:"attributions"`
	// Methodology names the scoring scheme, e.g. heuristic_acwr_v1
	Methodology string `json:"methodology"`
	// Forecast horizon in days, 0 for point-in-time scores
	HorizonDays int `json:"horizon_days,omitempty"`
}

// Predictor is the shared contract of all heuristic models.
type Predictor interface {
	// Name identifies the predictor in logs and attributions.
	Name() string
	// FeatureNames lists the features the predictor reads. Missing
	// features degrade confidence, they never fail the prediction.
	FeatureNames() []string
	// Predict scores the feature vector. Implementations return a
	// documented fallback with confidence <= 0.5 on insufficient data
	// instead of an error; err is reserved for programming mistakes.
	Predict(features feature.Vector) (Prediction, error)
}

// Extra feature names produced by the analyzers on top of the extractor's
// vectors. They live here because only predictors consume them.
const (
	FeatTrainingAge          = "training_age_years"
	FeatWeeklyProgressPct    = "weekly_progress_pct"
	FeatDaysSinceImprovement = "days_since_improvement"
	FeatReadinessTrend       = "readiness_trend"

	FeatACWR              = "acwr"
	FeatLoadSpikePct      = "load_spike_pct"
	FeatIntensitySpikePct = "intensity_spike_pct"
	FeatRPEInconsistency  = "rpe_inconsistency"
	FeatGrinderSetShare   = "grinder_set_share"

	FeatCaloricDeficit = "caloric_deficit"
	FeatBMREstimate    = "bmr_estimate"
	FeatRemainingKg    = "remaining_kg"
	FeatConsistency    = "consistency"

	FeatMuscleMatch     = "muscle_match"
	FeatEquipmentFit    = "equipment_fit"
	FeatExperienceMatch = "experience_match"
	FeatVariety         = "variety"
	FeatPlateauRisk     = "plateau_risk"
	FeatRecoveryScore   = "recovery_score"
)

// Training-age brackets shared by the progress and plateau models.
// Tunable parameters, preserved verbatim from the original scoring model.
const (
	noviceYears       = 0.5
	intermediateYears = 2.0
	advancedYears     = 5.0
)

// baseWeeklyStrengthGainPct is the expected weekly strength gain by
// training-age bracket, in percent.
func baseWeeklyStrengthGainPct(trainingAgeYears float64) float64 {
	switch {
	case trainingAgeYears < noviceYears:
		return 3.0
	case trainingAgeYears < intermediateYears:
		return 1.5
	case trainingAgeYears < advancedYears:
		return 0.8
	default:
		return 0.4
	}
}

// readinessMultiplier scales expected progress by recovery state, with band
// edges at 50/60/70/80.
func readinessMultiplier(readiness float64) float64 {
	switch {
	case readiness < 50:
		return 0.80
	case readiness < 60:
		return 0.90
	case readiness < 70:
		return 1.00
	case readiness < 80:
		return 1.05
	default:
		return 1.10
	}
}

// dataConfidence scales a predictor's accuracy constant by the share of its
// expected features actually present in the vector.
func dataConfidence(accuracy float64, expected []string, features feature.Vector) float64 {
	if len(expected) == 0 {
		return stats.Clamp(accuracy, 0, 1)
	}
	present := 0
	for _, name := range expected {
		if _, ok := features.Get(name); ok {
			present++
		}
	}
	share := float64(present) / float64(len(expected))
	return stats.Clamp(accuracy*share, 0, 1)
}

// CompoundPct compounds a weekly percentage rate over the given number of
// weeks and returns the total percentage change.
func CompoundPct(weeklyPct float64, weeks int) float64 {
	total := 1.0
	for i := 0; i < weeks; i++ {
		total *= 1 + weeklyPct/100
	}
	return (total - 1) * 100
}
