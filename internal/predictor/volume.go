package predictor

import (
	"github.com/fitflow/fitflow/internal/feature"
)

// VolumeProgression predicts the sustainable weekly training-volume growth
// rate in percent, projected 12 weeks ahead by the caller via CompoundPct.
type VolumeProgression struct{}

const volumeAccuracy = 0.70

// Weekly volume growth ceilings by training-age bracket, percent.
// Tunable parameters.
func baseWeeklyVolumeGrowthPct(trainingAgeYears float64) float64 {
	switch {
	case trainingAgeYears < noviceYears:
		return 4.0
	case trainingAgeYears < intermediateYears:
		return 2.0
	case trainingAgeYears < advancedYears:
		return 1.0
	default:
		return 0.5
	}
}

func NewVolumeProgression() *VolumeProgression { return &VolumeProgression{} }

func (p *VolumeProgression) Name() string { return "volume_progression" }

func (p *VolumeProgression) FeatureNames() []string {
	return []string{
		FeatTrainingAge,
		feature.FeatReadinessScore,
		feature.FeatAvgRPE,
	}
}

func (p *VolumeProgression) Predict(features feature.Vector) (Prediction, error) {
	trainingAge := features.Value(FeatTrainingAge, 0)
	readiness := features.Value(feature.FeatReadinessScore, 65)
	avgRPE := features.Value(feature.FeatAvgRPE, 0)

	base := baseWeeklyVolumeGrowthPct(trainingAge)
	readinessMult := readinessMultiplier(readiness)
	intensityAdj := inverseIntensityAdjustment(avgRPE)

	weekly := base * readinessMult * intensityAdj

	return Prediction{
		Value:      weekly,
		Confidence: dataConfidence(volumeAccuracy, p.FeatureNames(), features),
		Variance:   weekly * 0.35,
		Attributions: []Attribution{
			{Feature: FeatTrainingAge, Contribution: base, Importance: 0.45},
			{Feature: feature.FeatReadinessScore, Contribution: (readinessMult - 1) * base, Importance: 0.30},
			{Feature: feature.FeatAvgRPE, Contribution: (intensityAdj - 1) * base, Importance: 0.25},
		},
		Methodology: "heuristic_volume_ramp_v1",
		HorizonDays: 84,
	}, nil
}

// inverseIntensityAdjustment trades intensity against volume headroom: the
// harder the average set, the less room to add volume on top.
func inverseIntensityAdjustment(avgRPE float64) float64 {
	switch {
	case avgRPE == 0:
		return 1.0
	case avgRPE >= 9:
		return 0.75
	case avgRPE >= 8:
		return 0.90
	case avgRPE >= 6.5:
		return 1.0
	default:
		return 1.10
	}
}
