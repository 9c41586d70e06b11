package predictor

import (
	"testing"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feat(name string, value float64) feature.Feature {
	return feature.Feature{Name: name, Value: value, Importance: 0.1}
}

func TestTrainingLoadRisk_ACWRCurve(t *testing.T) {
	tests := []struct {
		name     string
		acwr     float64
		wantRisk float64
	}{
		{name: "detraining", acwr: 0.5, wantRisk: 45},
		{name: "sweet spot lower edge", acwr: 0.8, wantRisk: 10},
		{name: "sweet spot exact balance", acwr: 1.0, wantRisk: 10},
		{name: "sweet spot upper edge", acwr: 1.3, wantRisk: 10},
		{name: "mild overreach", acwr: 1.4, wantRisk: 25},
		{name: "overreach", acwr: 1.8, wantRisk: 50},
		{name: "danger zone", acwr: 2.5, wantRisk: 80},
	}

	p := NewTrainingLoadRisk()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := p.Predict(feature.Vector{feat(FeatACWR, tt.acwr)})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRisk, pred.Value)
			assert.GreaterOrEqual(t, pred.Confidence, 0.0)
			assert.LessOrEqual(t, pred.Confidence, 1.0)
		})
	}
}

func TestTrainingLoadRisk_SpikePenalty(t *testing.T) {
	p := NewTrainingLoadRisk()

	baseline, err := p.Predict(feature.Vector{feat(FeatACWR, 1.0)})
	require.NoError(t, err)

	spiked, err := p.Predict(feature.Vector{
		feat(FeatACWR, 1.0),
		feat(FeatLoadSpikePct, 30),
		feat(FeatIntensitySpikePct, 25),
	})
	require.NoError(t, err)

	assert.Greater(t, spiked.Value, baseline.Value, "spikes above 10%%/15%% must add risk")
	assert.LessOrEqual(t, spiked.Value, 100.0)

	// Increases inside the thresholds carry no penalty.
	mild, err := p.Predict(feature.Vector{
		feat(FeatACWR, 1.0),
		feat(FeatLoadSpikePct, 8),
		feat(FeatIntensitySpikePct, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, baseline.Value, mild.Value)
}

func TestTrainingLoadRisk_NoData(t *testing.T) {
	p := NewTrainingLoadRisk()
	pred, err := p.Predict(nil)
	require.NoError(t, err)
	assert.Equal(t, 30.0, pred.Value)
	assert.LessOrEqual(t, pred.Confidence, 0.5, "fallbacks must not look confident")
}

func TestReadinessRisk(t *testing.T) {
	p := NewReadinessRisk()

	t.Run("poor recovery scores high", func(t *testing.T) {
		pred, err := p.Predict(feature.Vector{
			feat(feature.FeatCurrentSleep, 4.5),
			feat(feature.FeatStressInverted, 2),  // stress 8
			feat(feature.FeatSorenessInverted, 2), // soreness 8
			feat(feature.FeatCurrentEnergy, 3),
		})
		require.NoError(t, err)
		assert.Greater(t, pred.Value, 60.0)
		assert.LessOrEqual(t, pred.Value, 100.0)
	})

	t.Run("good recovery scores low", func(t *testing.T) {
		pred, err := p.Predict(feature.Vector{
			feat(feature.FeatCurrentSleep, 8),
			feat(feature.FeatStressInverted, 8),
			feat(feature.FeatSorenessInverted, 8),
			feat(feature.FeatCurrentEnergy, 8),
		})
		require.NoError(t, err)
		assert.Less(t, pred.Value, 25.0)
	})

	t.Run("empty vector falls back", func(t *testing.T) {
		pred, err := p.Predict(nil)
		require.NoError(t, err)
		assert.Equal(t, 40.0, pred.Value)
		assert.LessOrEqual(t, pred.Confidence, 0.5)
	})
}

func TestMovementQualityRisk_WorstSignalDominates(t *testing.T) {
	p := NewMovementQualityRisk()

	pred, err := p.Predict(feature.Vector{
		feat(FeatRPEInconsistency, 0.5), // low
		feat(FeatGrinderSetShare, 0.35), // high: 80
		feat(FeatWeeklyProgressPct, 1),  // low
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, pred.Value, "max of sub-scores, not their sum")
}

func TestStrengthProgress(t *testing.T) {
	p := NewStrengthProgress()

	t.Run("novice outpaces advanced", func(t *testing.T) {
		novice, err := p.Predict(feature.Vector{
			feat(FeatTrainingAge, 0.3),
			feat(feature.FeatVolumeTrend, 0.3),
			feat(feature.FeatFrequency, 3),
			feat(feature.FeatAvgRPE, 8),
			feat(feature.FeatReadinessScore, 75),
		})
		require.NoError(t, err)

		advanced, err := p.Predict(feature.Vector{
			feat(FeatTrainingAge, 6),
			feat(feature.FeatVolumeTrend, 0.3),
			feat(feature.FeatFrequency, 3),
			feat(feature.FeatAvgRPE, 8),
			feat(feature.FeatReadinessScore, 75),
		})
		require.NoError(t, err)

		assert.Greater(t, novice.Value, advanced.Value)
	})

	t.Run("flat volume with weak gains discounts projection", func(t *testing.T) {
		stalled, err := p.Predict(feature.Vector{
			feat(FeatTrainingAge, 6), // base 0.4%/wk
			feat(feature.FeatVolumeTrend, 0.0),
			feat(feature.FeatFrequency, 2),
			feat(feature.FeatAvgRPE, 8),
			feat(feature.FeatReadinessScore, 65),
		})
		require.NoError(t, err)
		// base 0.4 * 1.0 * 1.1 * 1.0 = 0.44 < 0.5 -> strong discount 0.6
		assert.InDelta(t, 0.4*1.1*0.6, stalled.Value, 1e-9)
	})

	t.Run("attribution importances stay within budget", func(t *testing.T) {
		pred, err := p.Predict(feature.Vector{feat(FeatTrainingAge, 1)})
		require.NoError(t, err)
		var total float64
		for _, a := range pred.Attributions {
			total += a.Importance
		}
		assert.LessOrEqual(t, total, 1.0+1e-9)
	})
}

func TestCompoundPct(t *testing.T) {
	assert.InDelta(t, 0, CompoundPct(0, 12), 1e-9)
	// 1% weekly over 4 weeks is ~4.06%
	assert.InDelta(t, 4.06, CompoundPct(1, 4), 0.01)
	// Compounding beats linear over 12 weeks
	assert.Greater(t, CompoundPct(2, 12), 24.0)
}

func TestWeightLoss(t *testing.T) {
	p := NewWeightLoss()

	t.Run("no deficit means no loss", func(t *testing.T) {
		pred, err := p.Predict(feature.Vector{feat(FeatCaloricDeficit, 0)})
		require.NoError(t, err)
		assert.Zero(t, pred.Value)
		assert.LessOrEqual(t, pred.Confidence, 0.5)
	})

	t.Run("aggressive deficit gets adaptation discount", func(t *testing.T) {
		moderate, err := p.Predict(feature.Vector{
			feat(FeatCaloricDeficit, 300),
			feat(FeatBMREstimate, 1800),
			feat(FeatConsistency, 1),
		})
		require.NoError(t, err)

		aggressive, err := p.Predict(feature.Vector{
			feat(FeatCaloricDeficit, 600),
			feat(FeatBMREstimate, 1800),
			feat(FeatConsistency, 1),
		})
		require.NoError(t, err)

		// Twice the deficit must yield less than twice the predicted loss.
		assert.Less(t, aggressive.Value, 2*moderate.Value)
	})

	t.Run("closer to goal is slower", func(t *testing.T) {
		far, err := p.Predict(feature.Vector{
			feat(FeatCaloricDeficit, 400),
			feat(FeatBMREstimate, 1800),
			feat(FeatRemainingKg, 15),
			feat(FeatConsistency, 1),
		})
		require.NoError(t, err)

		near, err := p.Predict(feature.Vector{
			feat(FeatCaloricDeficit, 400),
			feat(FeatBMREstimate, 1800),
			feat(FeatRemainingKg, 1.5),
			feat(FeatConsistency, 1),
		})
		require.NoError(t, err)

		assert.Less(t, near.Value, far.Value)
	})
}

func TestVolumeProgression(t *testing.T) {
	p := NewVolumeProgression()
	pred, err := p.Predict(feature.Vector{
		feat(FeatTrainingAge, 1),
		feat(feature.FeatReadinessScore, 85),
		feat(feature.FeatAvgRPE, 7),
	})
	require.NoError(t, err)
	// base 2.0 * 1.1 readiness * 1.0 intensity
	assert.InDelta(t, 2.2, pred.Value, 1e-9)
	assert.Equal(t, 84, pred.HorizonDays)
}

func TestPlateauDetectors(t *testing.T) {
	strength := NewStrengthPlateau()
	volume := NewVolumePlateau()

	stalledVec := feature.Vector{
		feat(FeatWeeklyProgressPct, 0),
		feat(FeatDaysSinceImprovement, 45),
		feat(FeatTrainingAge, 1),
		feat(feature.FeatVolumeTrend, -0.2),
		feat(FeatReadinessTrend, -0.3),
	}
	progressingVec := feature.Vector{
		feat(FeatWeeklyProgressPct, 2.0),
		feat(FeatDaysSinceImprovement, 3),
		feat(FeatTrainingAge, 1),
		feat(feature.FeatVolumeTrend, 0.4),
		feat(FeatReadinessTrend, 0.2),
	}

	t.Run("stalled history crosses the threshold", func(t *testing.T) {
		pred, err := strength.Predict(stalledVec)
		require.NoError(t, err)
		assert.Greater(t, pred.Value, strength.Threshold())
		assert.LessOrEqual(t, pred.Value, 100.0)
	})

	t.Run("progressing history stays under it", func(t *testing.T) {
		pred, err := strength.Predict(progressingVec)
		require.NoError(t, err)
		assert.Less(t, pred.Value, strength.Threshold())
		assert.GreaterOrEqual(t, pred.Value, 0.0)
	})

	t.Run("volume detector declares earlier", func(t *testing.T) {
		assert.Less(t, volume.Threshold(), strength.Threshold())
	})

	t.Run("no data is not a plateau", func(t *testing.T) {
		pred, err := strength.Predict(nil)
		require.NoError(t, err)
		assert.Zero(t, pred.Value)
		assert.LessOrEqual(t, pred.Confidence, 0.5)
	})
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		days        int
		want        domain.PlateauSeverity
	}{
		{name: "fresh plateau is mild", probability: 62, days: 7, want: domain.PlateauMild},
		{name: "two-plus weeks is moderate", probability: 62, days: 20, want: domain.PlateauModerate},
		{name: "high probability escalates without duration", probability: 85, days: 5, want: domain.PlateauSevere},
		{name: "over a month is severe", probability: 62, days: 40, want: domain.PlateauSevere},
		{name: "over two months is chronic", probability: 62, days: 70, want: domain.PlateauChronic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityFor(tt.probability, tt.days))
		})
	}
}

func TestExerciseSelection(t *testing.T) {
	p := NewExerciseSelection()

	perfect, err := p.Predict(feature.Vector{
		feat(FeatMuscleMatch, 1),
		feat(FeatEquipmentFit, 1),
		feat(FeatExperienceMatch, 1),
		feat(feature.FeatReadinessScore, 100),
		feat(FeatVariety, 1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, perfect.Value, 1e-9)

	mismatch, err := p.Predict(feature.Vector{
		feat(FeatMuscleMatch, 0),
		feat(FeatEquipmentFit, 0),
		feat(FeatExperienceMatch, 0),
		feat(feature.FeatReadinessScore, 0),
		feat(FeatVariety, 0),
	})
	require.NoError(t, err)
	assert.Zero(t, mismatch.Value)
}

func TestVolumeIntensity(t *testing.T) {
	p := NewVolumeIntensity()

	fresh, err := p.Predict(feature.Vector{
		feat(feature.FeatReadinessScore, 90),
		feat(FeatTrainingAge, 3),
		feat(FeatRecoveryScore, 85),
		feat(FeatPlateauRisk, 10),
	})
	require.NoError(t, err)

	wrecked, err := p.Predict(feature.Vector{
		feat(feature.FeatReadinessScore, 30),
		feat(FeatTrainingAge, 3),
		feat(FeatRecoveryScore, 25),
		feat(FeatPlateauRisk, 10),
	})
	require.NoError(t, err)

	assert.Greater(t, fresh.Value, wrecked.Value)
	assert.GreaterOrEqual(t, wrecked.Value, 0.0)
	assert.LessOrEqual(t, fresh.Value, 100.0)
}

// Every predictor's confidence must stay in [0,1] regardless of input.
func TestConfidenceBounds(t *testing.T) {
	predictors := []Predictor{
		NewStrengthProgress(),
		NewWeightLoss(),
		NewVolumeProgression(),
		NewTrainingLoadRisk(),
		NewReadinessRisk(),
		NewMovementQualityRisk(),
		NewStrengthPlateau(),
		NewVolumePlateau(),
		NewExerciseSelection(),
		NewVolumeIntensity(),
	}

	vectors := []feature.Vector{
		nil,
		{feat("unknown_feature", 42)},
		{feat(FeatACWR, 99), feat(FeatTrainingAge, -5), feat(feature.FeatReadinessScore, 500)},
	}

	for _, p := range predictors {
		for i, vec := range vectors {
			pred, err := p.Predict(vec)
			require.NoError(t, err, "%s vector %d", p.Name(), i)
			assert.GreaterOrEqual(t, pred.Confidence, 0.0, "%s vector %d", p.Name(), i)
			assert.LessOrEqual(t, pred.Confidence, 1.0, "%s vector %d", p.Name(), i)
		}
	}
}
