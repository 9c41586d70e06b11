package predictor

import (
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/stats"
)

// WeightLoss predicts expected weekly weight loss in kilograms from an
// estimated caloric deficit, discounted by metabolic adaptation, training
// volume preservation, consistency, and proximity to the goal.
type WeightLoss struct{}

const weightLossAccuracy = 0.68

// kcalPerUnit is the classic 3500 kcal conversion the original model used.
// Kept verbatim; the discount factors absorb its optimism.
const kcalPerUnit = 3500.0

func NewWeightLoss() *WeightLoss { return &WeightLoss{} }

func (p *WeightLoss) Name() string { return "weight_loss" }

func (p *WeightLoss) FeatureNames() []string {
	return []string{
		FeatCaloricDeficit,
		FeatBMREstimate,
		FeatRemainingKg,
		feature.FeatVolumeTrend,
		FeatConsistency,
	}
}

func (p *WeightLoss) Predict(features feature.Vector) (Prediction, error) {
	deficit := features.Value(FeatCaloricDeficit, 0)
	bmr := features.Value(FeatBMREstimate, 0)
	remaining := features.Value(FeatRemainingKg, 0)
	volumeTrend := features.Value(feature.FeatVolumeTrend, 0)
	consistency := stats.Clamp(features.Value(FeatConsistency, 0.5), 0, 1)

	if deficit <= 0 {
		// Maintenance or surplus: nothing to project.
		return Prediction{
			Value:        0,
			Confidence:   0.3,
			Attributions: []Attribution{{Feature: FeatCaloricDeficit, Contribution: 0, Importance: 0.4}},
			Methodology:  "heuristic_energy_balance_v1",
			HorizonDays:  7,
		}, nil
	}

	theoretical := deficit * 7 / kcalPerUnit

	adaptation := metabolicAdaptationFactor(deficit, bmr)
	preservation := volumePreservationBonus(volumeTrend)
	plateau := goalProximityFactor(remaining)

	weekly := theoretical * adaptation * preservation * consistency * plateau

	return Prediction{
		Value:      weekly,
		Confidence: dataConfidence(weightLossAccuracy, p.FeatureNames(), features),
		Variance:   weekly * 0.5,
		Attributions: []Attribution{
			{Feature: FeatCaloricDeficit, Contribution: theoretical, Importance: 0.40},
			{Feature: FeatBMREstimate, Contribution: (adaptation - 1) * theoretical, Importance: 0.20},
			{Feature: feature.FeatVolumeTrend, Contribution: (preservation - 1) * theoretical, Importance: 0.15},
			{Feature: FeatConsistency, Contribution: (consistency - 1) * theoretical, Importance: 0.15},
			{Feature: FeatRemainingKg, Contribution: (plateau - 1) * theoretical, Importance: 0.10},
		},
		Methodology: "heuristic_energy_balance_v1",
		HorizonDays: 7,
	}, nil
}

// metabolicAdaptationFactor discounts aggressive deficits: the body fights
// back harder the larger the deficit relative to BMR.
func metabolicAdaptationFactor(deficit, bmr float64) float64 {
	if bmr <= 0 {
		return 0.95
	}
	share := deficit / bmr
	switch {
	case share > 0.25:
		return 0.70
	case share > 0.15:
		return 0.85
	default:
		return 0.95
	}
}

// volumePreservationBonus rewards keeping training volume up while cutting,
// which preserves lean mass and energy expenditure.
func volumePreservationBonus(volumeTrend float64) float64 {
	switch {
	case volumeTrend > 0.1:
		return 1.10
	case volumeTrend < -0.2:
		return 0.90
	default:
		return 1.0
	}
}

// goalProximityFactor models "closer to goal is harder": the last few kilos
// come off slower. Zero or negative remaining means no goal is set.
func goalProximityFactor(remainingKg float64) float64 {
	switch {
	case remainingKg <= 0:
		return 1.0
	case remainingKg <= 2:
		return 0.6
	case remainingKg <= 5:
		return 0.8
	case remainingKg <= 10:
		return 0.9
	default:
		return 1.0
	}
}
