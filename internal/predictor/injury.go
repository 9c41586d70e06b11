package predictor

import (
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/stats"
)

// The three injury-risk predictors are independent; the injury-risk analyzer
// combines their 0-100 scores at 40/35/25.
const (
	TrainingLoadWeight    = 0.40
	ReadinessRiskWeight   = 0.35
	MovementQualityWeight = 0.25
)

// TrainingLoadRisk scores injury risk from the acute:chronic workload ratio
// plus week-over-week load and intensity spikes. 0-100.
type TrainingLoadRisk struct{}

const trainingLoadAccuracy = 0.78

// Spike penalties kick in past these week-over-week increases, percent.
// Tunable parameters.
const (
	loadSpikeThresholdPct      = 10.0
	intensitySpikeThresholdPct = 15.0
)

func NewTrainingLoadRisk() *TrainingLoadRisk { return &TrainingLoadRisk{} }

func (p *TrainingLoadRisk) Name() string { return "training_load_risk" }

func (p *TrainingLoadRisk) FeatureNames() []string {
	return []string{FeatACWR, FeatLoadSpikePct, FeatIntensitySpikePct}
}

func (p *TrainingLoadRisk) Predict(features feature.Vector) (Prediction, error) {
	acwr, hasACWR := features.Get(FeatACWR)
	if !hasACWR {
		// No load history at all: mildly elevated default, low confidence.
		return Prediction{
			Value:       30,
			Confidence:  0.3,
			Methodology: "heuristic_acwr_v1",
		}, nil
	}

	base := acwrRiskCurve(acwr.Value)

	loadSpike := features.Value(FeatLoadSpikePct, 0)
	intensitySpike := features.Value(FeatIntensitySpikePct, 0)

	loadPenalty := spikePenalty(loadSpike, loadSpikeThresholdPct, 1.5, 25)
	intensityPenalty := spikePenalty(intensitySpike, intensitySpikeThresholdPct, 1.0, 15)

	risk := stats.Clamp(base+loadPenalty+intensityPenalty, 0, 100)

	return Prediction{
		Value:      risk,
		Confidence: dataConfidence(trainingLoadAccuracy, p.FeatureNames(), features),
		Variance:   8,
		Attributions: []Attribution{
			{Feature: FeatACWR, Contribution: base, Importance: 0.60},
			{Feature: FeatLoadSpikePct, Contribution: loadPenalty, Importance: 0.25},
			{Feature: FeatIntensitySpikePct, Contribution: intensityPenalty, Importance: 0.15},
		},
		Methodology: "heuristic_acwr_v1",
	}, nil
}

// acwrRiskCurve is the classic U-shaped acute:chronic risk curve: both
// undertraining and spiking load carry risk, the 0.8-1.3 band is the sweet
// spot.
func acwrRiskCurve(ratio float64) float64 {
	switch {
	case ratio < 0.8:
		return 45
	case ratio <= 1.3:
		return 10
	case ratio <= 1.5:
		return 25
	case ratio <= 2.0:
		return 50
	default:
		return 80
	}
}

// spikePenalty grows linearly with the excess over threshold, capped.
func spikePenalty(actualPct, thresholdPct, slope, maxPenalty float64) float64 {
	if actualPct <= thresholdPct {
		return 0
	}
	return stats.Clamp((actualPct-thresholdPct)*slope, 0, maxPenalty)
}

// ReadinessRisk scores injury risk from recovery state: weighted step
// functions over sleep deficit, stress, soreness and energy. 0-100.
type ReadinessRisk struct{}

const readinessRiskAccuracy = 0.74

// Readiness risk factor weights. Tunable parameters.
const (
	sleepDeficitWeight = 0.35
	stressRiskWeight   = 0.25
	sorenessRiskWeight = 0.25
	energyRiskWeight   = 0.15
)

func NewReadinessRisk() *ReadinessRisk { return &ReadinessRisk{} }

func (p *ReadinessRisk) Name() string { return "readiness_risk" }

func (p *ReadinessRisk) FeatureNames() []string {
	return []string{
		feature.FeatCurrentSleep,
		feature.FeatStressInverted,
		feature.FeatSorenessInverted,
		feature.FeatCurrentEnergy,
	}
}

func (p *ReadinessRisk) Predict(features feature.Vector) (Prediction, error) {
	if len(features) == 0 {
		return Prediction{
			Value:       40,
			Confidence:  0.3,
			Methodology: "heuristic_recovery_v1",
		}, nil
	}

	sleep := features.Value(feature.FeatCurrentSleep, 7)
	stress := 10 - features.Value(feature.FeatStressInverted, 6)
	soreness := 10 - features.Value(feature.FeatSorenessInverted, 7)
	energy := features.Value(feature.FeatCurrentEnergy, 6)

	sleepRisk := sleepDeficitRisk(8 - sleep)
	stressRisk := scaleTenRisk(stress)
	sorenessRisk := scaleTenRisk(soreness)
	energyRisk := lowEnergyRisk(energy)

	risk := sleepRisk*sleepDeficitWeight +
		stressRisk*stressRiskWeight +
		sorenessRisk*sorenessRiskWeight +
		energyRisk*energyRiskWeight

	return Prediction{
		Value:      stats.Clamp(risk, 0, 100),
		Confidence: dataConfidence(readinessRiskAccuracy, p.FeatureNames(), features),
		Variance:   10,
		Attributions: []Attribution{
			{Feature: feature.FeatCurrentSleep, Contribution: sleepRisk * sleepDeficitWeight, Importance: sleepDeficitWeight},
			{Feature: feature.FeatStressInverted, Contribution: stressRisk * stressRiskWeight, Importance: stressRiskWeight},
			{Feature: feature.FeatSorenessInverted, Contribution: sorenessRisk * sorenessRiskWeight, Importance: sorenessRiskWeight},
			{Feature: feature.FeatCurrentEnergy, Contribution: energyRisk * energyRiskWeight, Importance: energyRiskWeight},
		},
		Methodology: "heuristic_recovery_v1",
	}, nil
}

func sleepDeficitRisk(deficitHours float64) float64 {
	switch {
	case deficitHours >= 3:
		return 90
	case deficitHours >= 2:
		return 70
	case deficitHours >= 1:
		return 45
	case deficitHours > 0.5:
		return 25
	default:
		return 10
	}
}

// scaleTenRisk maps a 1-10 "higher is worse" scale to a risk step function.
func scaleTenRisk(v float64) float64 {
	switch {
	case v >= 8:
		return 85
	case v >= 6:
		return 60
	case v >= 4:
		return 35
	default:
		return 15
	}
}

func lowEnergyRisk(energy float64) float64 {
	switch {
	case energy <= 3:
		return 80
	case energy <= 5:
		return 50
	default:
		return 20
	}
}

// MovementQualityRisk scores injury risk from how the user moves: RPE
// inconsistency, form-breakdown frequency and too-fast progression. The
// worst signal dominates (max, not sum). 0-100.
type MovementQualityRisk struct{}

const movementQualityAccuracy = 0.66

func NewMovementQualityRisk() *MovementQualityRisk { return &MovementQualityRisk{} }

func (p *MovementQualityRisk) Name() string { return "movement_quality_risk" }

func (p *MovementQualityRisk) FeatureNames() []string {
	return []string{FeatRPEInconsistency, FeatGrinderSetShare, FeatWeeklyProgressPct}
}

func (p *MovementQualityRisk) Predict(features feature.Vector) (Prediction, error) {
	if len(features) == 0 {
		return Prediction{
			Value:       25,
			Confidence:  0.3,
			Methodology: "heuristic_movement_v1",
		}, nil
	}

	inconsistency := features.Value(FeatRPEInconsistency, 0)
	grinderShare := features.Value(FeatGrinderSetShare, 0)
	progressPct := features.Value(FeatWeeklyProgressPct, 0)

	inconsistencyRisk := rpeInconsistencyRisk(inconsistency)
	breakdownRisk := formBreakdownRisk(grinderShare)
	progressionRisk := fastProgressionRisk(progressPct)

	risk := inconsistencyRisk
	dominant := FeatRPEInconsistency
	if breakdownRisk > risk {
		risk = breakdownRisk
		dominant = FeatGrinderSetShare
	}
	if progressionRisk > risk {
		risk = progressionRisk
		dominant = FeatWeeklyProgressPct
	}

	return Prediction{
		Value:      risk,
		Confidence: dataConfidence(movementQualityAccuracy, p.FeatureNames(), features),
		Variance:   12,
		Attributions: []Attribution{
			{Feature: dominant, Contribution: risk, Importance: 0.60},
			{Feature: FeatRPEInconsistency, Contribution: inconsistencyRisk, Importance: 0.15},
			{Feature: FeatGrinderSetShare, Contribution: breakdownRisk, Importance: 0.15},
		},
		Methodology: "heuristic_movement_v1",
	}, nil
}

// rpeInconsistencyRisk: a wildly swinging RPE at similar loads suggests
// unstable technique. Buckets on the RPE standard deviation.
func rpeInconsistencyRisk(stdDev float64) float64 {
	switch {
	case stdDev > 2.5:
		return 75
	case stdDev > 1.8:
		return 55
	case stdDev > 1.2:
		return 35
	default:
		return 15
	}
}

// formBreakdownRisk uses the share of near-maximal (RPE >= 9.5) sets as a
// proxy for sets taken to technical failure.
func formBreakdownRisk(grinderShare float64) float64 {
	switch {
	case grinderShare > 0.30:
		return 80
	case grinderShare > 0.15:
		return 50
	default:
		return 20
	}
}

// fastProgressionRisk flags weight jumping faster than tissue adapts.
func fastProgressionRisk(weeklyPct float64) float64 {
	switch {
	case weeklyPct > 5:
		return 85
	case weeklyPct > 3.5:
		return 60
	case weeklyPct > 2:
		return 35
	default:
		return 15
	}
}
