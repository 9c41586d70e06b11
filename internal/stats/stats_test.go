package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegression(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []float64
		wantSlope     float64
		wantIntercept float64
		wantZero      bool
	}{
		{
			name:          "perfect line",
			x:             []float64{1, 2, 3, 4},
			y:             []float64{2, 4, 6, 8},
			wantSlope:     2,
			wantIntercept: 0,
		},
		{
			name:          "offset line",
			x:             []float64{0, 1, 2},
			y:             []float64{5, 6, 7},
			wantSlope:     1,
			wantIntercept: 5,
		},
		{
			name:     "single point",
			x:        []float64{1},
			y:        []float64{2},
			wantZero: true,
		},
		{
			name:     "empty input",
			x:        nil,
			y:        nil,
			wantZero: true,
		},
		{
			name:     "zero variance x",
			x:        []float64{3, 3, 3},
			y:        []float64{1, 2, 3},
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := LinearRegression(tt.x, tt.y)
			if tt.wantZero {
				assert.Zero(t, r.Slope)
				assert.Zero(t, r.Intercept)
				assert.Zero(t, r.R2)
				assert.Zero(t, r.Confidence)
				return
			}
			assert.InDelta(t, tt.wantSlope, r.Slope, 1e-9)
			assert.InDelta(t, tt.wantIntercept, r.Intercept, 1e-9)
			assert.InDelta(t, 1.0, r.R2, 1e-9)
			assert.GreaterOrEqual(t, r.Confidence, 0.0)
			assert.LessOrEqual(t, r.Confidence, 1.0)
		})
	}
}

func TestLinearRegression_FlatSeries(t *testing.T) {
	// Flat y has zero total variance; R2 must not blow up.
	r := LinearRegression([]float64{1, 2, 3}, []float64{5, 5, 5})
	assert.Zero(t, r.Slope)
	assert.Zero(t, r.R2)
}

func TestMovingAverage(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}

	got := MovingAverage(data, 2)
	require.Len(t, got, 4)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, got)

	// Window covering the whole series collapses to the global mean.
	got = MovingAverage(data, 5)
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0])

	got = MovingAverage(data, 10)
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0])

	assert.Nil(t, MovingAverage(nil, 3))
}

func TestExponentialMovingAverage(t *testing.T) {
	data := []float64{10, 10, 10}
	got := ExponentialMovingAverage(data, 0.2)
	require.Len(t, got, 3)
	for _, v := range got {
		assert.Equal(t, 10.0, v)
	}

	// alpha out of range falls back to the default
	withDefault := ExponentialMovingAverage([]float64{1, 2}, -1)
	assert.InDelta(t, 1+DefaultEMAAlpha*(2-1), withDefault[1], 1e-9)
}

func TestDetectOutliers(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		got := DetectOutliers([]float64{1, 2, 100})
		assert.Empty(t, got.Indices)
	})

	t.Run("flags extreme value", func(t *testing.T) {
		got := DetectOutliers([]float64{10, 11, 10, 12, 11, 10, 95})
		require.Len(t, got.Indices, 1)
		assert.Equal(t, 6, got.Indices[0])
	})

	t.Run("uniform data has none", func(t *testing.T) {
		got := DetectOutliers([]float64{5, 5, 5, 5, 5})
		assert.Empty(t, got.Indices)
	})
}

func TestCorrelation(t *testing.T) {
	assert.InDelta(t, 1.0, Correlation([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.InDelta(t, -1.0, Correlation([]float64{1, 2, 3}, []float64{6, 4, 2}), 1e-9)
	assert.Zero(t, Correlation([]float64{1, 1, 1}, []float64{2, 4, 6}))
	assert.Zero(t, Correlation([]float64{1}, []float64{2}))
	assert.Zero(t, Correlation(nil, nil))
}

func TestStdDev(t *testing.T) {
	assert.Zero(t, StdDev(nil))
	assert.Zero(t, StdDev([]float64{5}))
	// Sample std dev of {2,4,4,4,5,5,7,9} is ~2.138
	assert.InDelta(t, 2.138, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.001)
}

func TestNormalize(t *testing.T) {
	t.Run("scales to unit range", func(t *testing.T) {
		got := Normalize([]float64{0, 5, 10})
		assert.Equal(t, []float64{0, 0.5, 1}, got)
	})

	t.Run("constant input maps to 0.5", func(t *testing.T) {
		got := Normalize([]float64{7, 7, 7, 7})
		for _, v := range got {
			assert.Equal(t, 0.5, v)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Normalize(nil))
	})
}

func TestSeasonalCorrelation(t *testing.T) {
	// Two full weeks with a strict weekly rhythm correlate strongly.
	values := []float64{1, 2, 3, 4, 5, 6, 7, 1, 2, 3, 4, 5, 6, 7}
	days := make([]time.Weekday, len(values))
	for i := range days {
		days[i] = time.Weekday(i % 7)
	}
	assert.InDelta(t, 1.0, SeasonalCorrelation(values, days), 1e-9)

	// Too few samples cannot support a weekly estimate.
	assert.Zero(t, SeasonalCorrelation(values[:5], days[:5]))
}

func TestDecompose(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	days := make([]time.Weekday, len(values))
	for i := range days {
		days[i] = time.Weekday(i % 7)
	}

	d := Decompose(values, days, 7)
	require.Len(t, d.Trend, len(values))
	require.Len(t, d.Seasonal, len(values))
	require.Len(t, d.Residual, len(values))

	// Additivity: parts must reassemble the series.
	for i := range values {
		assert.InDelta(t, values[i], d.Trend[i]+d.Seasonal[i]+d.Residual[i], 1e-9)
	}

	// Short series falls back to mean trend.
	short := Decompose([]float64{3, 5}, days[:2], 7)
	assert.Equal(t, 4.0, short.Trend[0])
}
