package predictor

import (
	"math"

	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/stats"
)

// StrengthProgress predicts the expected weekly strength gain in percent.
// Value is the weekly rate; 4- and 12-week projections compound from it via
// CompoundPct.
type StrengthProgress struct{}

// strengthAccuracy is the model's point-in-time accuracy constant, used only
// to scale confidence.
const strengthAccuracy = 0.72

// Plateau discounts applied when volume is flat and weekly gain is already
// under 1%. Tunable parameters.
const (
	strengthPlateauDiscountMild   = 0.8
	strengthPlateauDiscountStrong = 0.6
	flatVolumeTrendBand           = 0.05
)

func NewStrengthProgress() *StrengthProgress { return &StrengthProgress{} }

func (p *StrengthProgress) Name() string { return "strength_progress" }

func (p *StrengthProgress) FeatureNames() []string {
	return []string{
		FeatTrainingAge,
		feature.FeatVolumeTrend,
		feature.FeatFrequency,
		feature.FeatAvgRPE,
		feature.FeatReadinessScore,
	}
}

func (p *StrengthProgress) Predict(features feature.Vector) (Prediction, error) {
	trainingAge := features.Value(FeatTrainingAge, 0)
	volumeTrend := features.Value(feature.FeatVolumeTrend, 0)
	frequency := features.Value(feature.FeatFrequency, 0)
	avgRPE := features.Value(feature.FeatAvgRPE, 0)
	readiness := features.Value(feature.FeatReadinessScore, 65)

	base := baseWeeklyStrengthGainPct(trainingAge)

	volumeMult := volumeFrequencyMultiplier(volumeTrend, frequency)
	intensityMult := intensityBandMultiplier(avgRPE)
	readinessMult := readinessMultiplier(readiness)

	weekly := base * volumeMult * intensityMult * readinessMult

	// A flat volume trend with sub-1% gains points at an approaching
	// plateau; discount projections rather than promise linear progress.
	if math.Abs(volumeTrend) < flatVolumeTrendBand && weekly < 1.0 {
		if weekly < 0.5 {
			weekly *= strengthPlateauDiscountStrong
		} else {
			weekly *= strengthPlateauDiscountMild
		}
	}

	return Prediction{
		Value:      weekly,
		Confidence: dataConfidence(strengthAccuracy, p.FeatureNames(), features),
		Variance:   weekly * 0.4,
		Attributions: []Attribution{
			{Feature: FeatTrainingAge, Contribution: base, Importance: 0.35},
			{Feature: feature.FeatVolumeTrend, Contribution: (volumeMult - 1) * base, Importance: 0.25},
			{Feature: feature.FeatAvgRPE, Contribution: (intensityMult - 1) * base, Importance: 0.20},
			{Feature: feature.FeatReadinessScore, Contribution: (readinessMult - 1) * base, Importance: 0.20},
		},
		Methodology: "heuristic_training_age_v1",
		HorizonDays: 7,
	}, nil
}

// volumeFrequencyMultiplier rewards rising volume and adequate frequency,
// clamped to [0.7, 1.3].
func volumeFrequencyMultiplier(volumeTrend, frequency float64) float64 {
	mult := 1.0 + 0.3*volumeTrend
	switch {
	case frequency >= 3:
		mult += 0.05
	case frequency > 0 && frequency < 1.5:
		mult -= 0.10
	}
	return stats.Clamp(mult, 0.7, 1.3)
}

// intensityBandMultiplier rewards training in the 7-9 RPE band.
func intensityBandMultiplier(avgRPE float64) float64 {
	switch {
	case avgRPE == 0:
		return 1.0 // unrated history, assume neutral intensity
	case avgRPE >= 7 && avgRPE <= 9:
		return 1.10
	case avgRPE >= 5.5 && avgRPE < 7:
		return 1.00
	case avgRPE > 9:
		return 0.90 // chronic grinding cuts into recoverable volume
	default:
		return 0.85 // too light to drive adaptation
	}
}
