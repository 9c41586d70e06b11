// Package stats holds the pure numeric primitives the analysis pipeline is
// built on. Nothing in here knows about workouts or wellness metrics.
package stats

import (
	"math"
	"sort"
)

// DefaultEMAAlpha is the smoothing factor used when callers pass alpha <= 0.
const DefaultEMAAlpha = 0.2

// Regression is the result of a simple least-squares fit.
type Regression struct {
	Slope     float64
	Intercept float64
	R2        float64
	// Confidence is R2 clamped to [0,1]
	Confidence float64
}

// LinearRegression fits y = slope*x + intercept. Fewer than 2 points or a
// zero-variance x returns the zero value rather than dividing by zero.
func LinearRegression(x, y []float64) Regression {
	n := len(x)
	if n < 2 || len(y) != n {
		return Regression{}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return Regression{}
	}

	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	// R^2 = 1 - SSres/SStot; a flat y series gets R2 = 0
	meanY := sumY / fn
	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		pred := slope*x[i] + intercept
		ssRes += (y[i] - pred) * (y[i] - pred)
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Regression{
		Slope:      slope,
		Intercept:  intercept,
		R2:         r2,
		Confidence: Clamp(r2, 0, 1),
	}
}

// MovingAverage returns the trailing window average at each index. A window
// of zero, or one at least as long as the data, collapses to a single global
// average.
func MovingAverage(data []float64, window int) []float64 {
	if len(data) == 0 {
		return nil
	}
	if window <= 0 || window >= len(data) {
		return []float64{Mean(data)}
	}

	out := make([]float64, 0, len(data)-window+1)
	var sum float64
	for i, v := range data {
		sum += v
		if i >= window {
			sum -= data[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// ExponentialMovingAverage smooths data with the given alpha; alpha <= 0
// falls back to DefaultEMAAlpha.
func ExponentialMovingAverage(data []float64, alpha float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultEMAAlpha
	}

	out := make([]float64, len(data))
	out[0] = data[0]
	for i := 1; i < len(data); i++ {
		out[i] = alpha*data[i] + (1-alpha)*out[i-1]
	}
	return out
}

// Outliers is the result of an IQR outlier scan.
type Outliers struct {
	// Indices of outlying points in the input slice
	Indices []int
	// Whisker bounds: values outside [Lower, Upper] are outliers
	Lower float64
	Upper float64
}

// DetectOutliers flags points outside 1.5x the interquartile range. Fewer
// than 4 points cannot support quartiles and yield an empty result.
func DetectOutliers(data []float64) Outliers {
	if len(data) < 4 {
		return Outliers{}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	q1 := percentileSorted(sorted, 25)
	q3 := percentileSorted(sorted, 75)
	iqr := q3 - q1

	result := Outliers{
		Lower: q1 - 1.5*iqr,
		Upper: q3 + 1.5*iqr,
	}
	for i, v := range data {
		if v < result.Lower || v > result.Upper {
			result.Indices = append(result.Indices, i)
		}
	}
	return result
}

// Correlation returns the Pearson correlation of x and y, or 0 when either
// series is degenerate.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// Mean returns the arithmetic mean, 0 for empty input.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// StdDev returns the sample standard deviation (n-1 denominator), 0 when
// fewer than 2 points.
func StdDev(data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}
	mean := Mean(data)
	var sum float64
	for _, v := range data {
		sum += (v - mean) * (v - mean)
	}
	return math.Sqrt(sum / float64(n-1))
}

// Normalize rescales data to [0,1] by min-max. A constant series maps to 0.5
// uniformly so downstream weights stay finite.
func Normalize(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(data))
	if max == min {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range data {
		out[i] = (v - min) / (max - min)
	}
	return out
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// percentileSorted interpolates the p-th percentile of pre-sorted data.
func percentileSorted(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
