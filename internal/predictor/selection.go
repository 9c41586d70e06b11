package predictor

import (
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/stats"
)

// ExerciseSelection scores how well one catalog exercise suits the request
// at hand. Value is a 0-100 suitability score; the generator ranks
// candidates by it.
type ExerciseSelection struct{}

const selectionAccuracy = 0.75

// Selection criterion weights. Tunable parameters.
const (
	muscleMatchWeight     = 0.30
	equipmentFitWeight    = 0.25
	experienceMatchWeight = 0.15
	selReadinessWeight    = 0.15
	varietyWeight         = 0.15
)

func NewExerciseSelection() *ExerciseSelection { return &ExerciseSelection{} }

func (p *ExerciseSelection) Name() string { return "exercise_selection" }

func (p *ExerciseSelection) FeatureNames() []string {
	return []string{
		FeatMuscleMatch,
		FeatEquipmentFit,
		FeatExperienceMatch,
		feature.FeatReadinessScore,
		FeatVariety,
	}
}

func (p *ExerciseSelection) Predict(features feature.Vector) (Prediction, error) {
	muscle := stats.Clamp(features.Value(FeatMuscleMatch, 0), 0, 1)
	equipment := stats.Clamp(features.Value(FeatEquipmentFit, 0), 0, 1)
	experience := stats.Clamp(features.Value(FeatExperienceMatch, 0.5), 0, 1)
	readiness := stats.Clamp(features.Value(feature.FeatReadinessScore, 65)/100, 0, 1)
	variety := stats.Clamp(features.Value(FeatVariety, 0.5), 0, 1)

	score := 100 * (muscle*muscleMatchWeight +
		equipment*equipmentFitWeight +
		experience*experienceMatchWeight +
		readiness*selReadinessWeight +
		variety*varietyWeight)

	return Prediction{
		Value:      stats.Clamp(score, 0, 100),
		Confidence: dataConfidence(selectionAccuracy, p.FeatureNames(), features),
		Variance:   5,
		Attributions: []Attribution{
			{Feature: FeatMuscleMatch, Contribution: 100 * muscle * muscleMatchWeight, Importance: muscleMatchWeight},
			{Feature: FeatEquipmentFit, Contribution: 100 * equipment * equipmentFitWeight, Importance: equipmentFitWeight},
			{Feature: FeatExperienceMatch, Contribution: 100 * experience * experienceMatchWeight, Importance: experienceMatchWeight},
			{Feature: feature.FeatReadinessScore, Contribution: 100 * readiness * selReadinessWeight, Importance: selReadinessWeight},
			{Feature: FeatVariety, Contribution: 100 * variety * varietyWeight, Importance: varietyWeight},
		},
		Methodology: "heuristic_linear_suitability_v1",
	}, nil
}

// VolumeIntensity produces a 0-100 volume-target score balancing readiness,
// training age, recovery state and plateau pressure. The generator maps the
// score onto set counts and intensity bands.
type VolumeIntensity struct{}

const optimizerAccuracy = 0.70

// Optimizer criterion weights. Tunable parameters.
const (
	optReadinessWeight = 0.35
	optAgeWeight       = 0.25
	optRecoveryWeight  = 0.25
	optPlateauWeight   = 0.15
)

func NewVolumeIntensity() *VolumeIntensity { return &VolumeIntensity{} }

func (p *VolumeIntensity) Name() string { return "volume_intensity_optimizer" }

func (p *VolumeIntensity) FeatureNames() []string {
	return []string{
		feature.FeatReadinessScore,
		FeatTrainingAge,
		FeatRecoveryScore,
		FeatPlateauRisk,
	}
}

func (p *VolumeIntensity) Predict(features feature.Vector) (Prediction, error) {
	readiness := stats.Clamp(features.Value(feature.FeatReadinessScore, 65), 0, 100)
	trainingAge := features.Value(FeatTrainingAge, 1)
	recovery := stats.Clamp(features.Value(FeatRecoveryScore, 65), 0, 100)
	plateauRisk := stats.Clamp(features.Value(FeatPlateauRisk, 30), 0, 100)

	ageScore := volumeToleranceScore(trainingAge)
	plateauScore := plateauStimulusScore(plateauRisk)

	score := readiness*optReadinessWeight +
		ageScore*optAgeWeight +
		recovery*optRecoveryWeight +
		plateauScore*optPlateauWeight

	return Prediction{
		Value:      stats.Clamp(score, 0, 100),
		Confidence: dataConfidence(optimizerAccuracy, p.FeatureNames(), features),
		Variance:   7,
		Attributions: []Attribution{
			{Feature: feature.FeatReadinessScore, Contribution: readiness * optReadinessWeight, Importance: optReadinessWeight},
			{Feature: FeatTrainingAge, Contribution: ageScore * optAgeWeight, Importance: optAgeWeight},
			{Feature: FeatRecoveryScore, Contribution: recovery * optRecoveryWeight, Importance: optRecoveryWeight},
			{Feature: FeatPlateauRisk, Contribution: plateauScore * optPlateauWeight, Importance: optPlateauWeight},
		},
		Methodology: "heuristic_volume_target_v1",
	}, nil
}

// volumeToleranceScore: trained lifters tolerate and need more volume.
func volumeToleranceScore(trainingAgeYears float64) float64 {
	switch {
	case trainingAgeYears < noviceYears:
		return 40
	case trainingAgeYears < intermediateYears:
		return 60
	case trainingAgeYears < advancedYears:
		return 75
	default:
		return 85
	}
}

// plateauStimulusScore: a building plateau argues for a modest stimulus
// change, not for piling on volume when risk is extreme.
func plateauStimulusScore(plateauRisk float64) float64 {
	switch {
	case plateauRisk > 60:
		return 70
	case plateauRisk > 30:
		return 55
	default:
		return 45
	}
}
