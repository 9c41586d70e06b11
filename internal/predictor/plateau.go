package predictor

import (
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/stats"
)

// Plateau probability component weights, shared by the strength and volume
// detectors. Tunable parameters.
const (
	stagnationWeight     = 0.40
	ageDeficitWeight     = 0.25
	volumeTrendWeight    = 0.20
	readinessTrendWeight = 0.15

	// StrengthPlateauThreshold and VolumePlateauThreshold are the
	// probabilities past which a plateau is declared.
	StrengthPlateauThreshold = 60.0
	VolumePlateauThreshold   = 55.0

	// ImprovementThresholdPct: a set's max weight must beat the running
	// best by this much to count as progress.
	ImprovementThresholdPct = 2.5
)

// plateauDetector carries the shared scoring; the exported detectors fix the
// dimension and threshold.
type plateauDetector struct {
	name      string
	threshold float64
	accuracy  float64
}

// StrengthPlateau detects stalled strength progress. Value is the plateau
// probability 0-100.
type StrengthPlateau struct{ plateauDetector }

// VolumePlateau detects stalled volume progress, with a slightly lower
// declaration threshold since volume responds faster to intervention.
type VolumePlateau struct{ plateauDetector }

func NewStrengthPlateau() *StrengthPlateau {
	return &StrengthPlateau{plateauDetector{
		name:      "strength_plateau",
		threshold: StrengthPlateauThreshold,
		accuracy:  0.71,
	}}
}

func NewVolumePlateau() *VolumePlateau {
	return &VolumePlateau{plateauDetector{
		name:      "volume_plateau",
		threshold: VolumePlateauThreshold,
		accuracy:  0.69,
	}}
}

func (p *plateauDetector) Name() string { return p.name }

func (p *plateauDetector) FeatureNames() []string {
	return []string{
		FeatWeeklyProgressPct,
		FeatDaysSinceImprovement,
		FeatTrainingAge,
		feature.FeatVolumeTrend,
		FeatReadinessTrend,
	}
}

// Threshold returns the probability past which this detector declares a
// plateau.
func (p *plateauDetector) Threshold() float64 { return p.threshold }

func (p *plateauDetector) Predict(features feature.Vector) (Prediction, error) {
	if len(features) == 0 {
		// No history: cannot distinguish plateau from absence of data.
		return Prediction{
			Value:       0,
			Confidence:  0.2,
			Methodology: "heuristic_stagnation_v1",
		}, nil
	}

	progressPct := features.Value(FeatWeeklyProgressPct, 0)
	daysSince := features.Value(FeatDaysSinceImprovement, 0)
	trainingAge := features.Value(FeatTrainingAge, 0)
	volumeTrend := features.Value(feature.FeatVolumeTrend, 0)
	readinessTrend := features.Value(FeatReadinessTrend, 0)

	stagnation := stagnationScore(progressPct, daysSince, trainingAge)
	ageDeficit := ageDeficitScore(progressPct, trainingAge)
	volScore := volumeTrendScore(volumeTrend)
	readyScore := readinessTrendScore(readinessTrend)

	probability := stats.Clamp(
		stagnation*stagnationWeight+
			ageDeficit*ageDeficitWeight+
			volScore*volumeTrendWeight+
			readyScore*readinessTrendWeight,
		0, 100)

	return Prediction{
		Value:      probability,
		Confidence: dataConfidence(p.accuracy, p.FeatureNames(), features),
		Variance:   9,
		Attributions: []Attribution{
			{Feature: FeatDaysSinceImprovement, Contribution: stagnation * stagnationWeight, Importance: stagnationWeight},
			{Feature: FeatTrainingAge, Contribution: ageDeficit * ageDeficitWeight, Importance: ageDeficitWeight},
			{Feature: feature.FeatVolumeTrend, Contribution: volScore * volumeTrendWeight, Importance: volumeTrendWeight},
			{Feature: FeatReadinessTrend, Contribution: readyScore * readinessTrendWeight, Importance: readinessTrendWeight},
		},
		Methodology: "heuristic_stagnation_v1",
	}, nil
}

// SeverityFor escalates with plateau duration and probability.
func SeverityFor(probability float64, durationDays int) domain.PlateauSeverity {
	switch {
	case durationDays > 60:
		return domain.PlateauChronic
	case durationDays > 30 || probability > 80:
		return domain.PlateauSevere
	case durationDays > 14 || probability > 70:
		return domain.PlateauModerate
	default:
		return domain.PlateauMild
	}
}

// minExpectedWeeklyPct is the training-age-adjusted floor under which
// progress counts as stagnant.
func minExpectedWeeklyPct(trainingAgeYears float64) float64 {
	switch {
	case trainingAgeYears < noviceYears:
		return 1.0
	case trainingAgeYears < intermediateYears:
		return 0.5
	case trainingAgeYears < advancedYears:
		return 0.25
	default:
		return 0.1
	}
}

// stagnationScore combines "how far under the expected floor" with "how long
// since the last real improvement".
func stagnationScore(progressPct, daysSinceImprovement, trainingAge float64) float64 {
	floor := minExpectedWeeklyPct(trainingAge)

	var rateScore float64
	switch {
	case progressPct <= 0:
		rateScore = 70
	case progressPct < floor:
		rateScore = 40 + 30*(1-progressPct/floor)
	default:
		rateScore = 15
	}

	var durationScore float64
	switch {
	case daysSinceImprovement > 60:
		durationScore = 30
	case daysSinceImprovement > 30:
		durationScore = 20
	case daysSinceImprovement > 14:
		durationScore = 10
	}

	return stats.Clamp(rateScore+durationScore, 0, 100)
}

// ageDeficitScore measures the gap between the expected rate for the user's
// training age and what the history shows.
func ageDeficitScore(progressPct, trainingAge float64) float64 {
	expected := baseWeeklyStrengthGainPct(trainingAge)
	if expected <= 0 {
		return 0
	}
	deficit := (expected - progressPct) / expected
	return stats.Clamp(deficit*100, 0, 100)
}

func volumeTrendScore(trend float64) float64 {
	switch {
	case trend < -0.1:
		return 70
	case trend <= 0.1:
		return 50
	default:
		return 20
	}
}

func readinessTrendScore(trend float64) float64 {
	switch {
	case trend < -0.2:
		return 75
	case trend < 0:
		return 45
	default:
		return 20
	}
}
