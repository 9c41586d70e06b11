package stats

import "time"

// WeekdayMeans buckets values by weekday and returns the per-weekday mean.
// Weekdays with no samples hold the global mean so consumers can subtract
// the seasonal component without special cases.
func WeekdayMeans(values []float64, days []time.Weekday) [7]float64 {
	var sums, counts [7]float64
	for i, v := range values {
		if i >= len(days) {
			break
		}
		d := int(days[i])
		sums[d] += v
		counts[d]++
	}

	global := Mean(values)
	var means [7]float64
	for d := 0; d < 7; d++ {
		if counts[d] > 0 {
			means[d] = sums[d] / counts[d]
		} else {
			means[d] = global
		}
	}
	return means
}

// SeasonalCorrelation measures how strongly values follow a weekly rhythm:
// the Pearson correlation between each value and its weekday mean. Near 0
// means no weekly pattern.
func SeasonalCorrelation(values []float64, days []time.Weekday) float64 {
	if len(values) < 8 || len(days) < len(values) {
		return 0
	}
	means := WeekdayMeans(values, days)
	expected := make([]float64, len(values))
	for i := range values {
		expected[i] = means[int(days[i])]
	}
	return Correlation(values, expected)
}

// Decomposition splits a series into trend, seasonal and residual parts.
type Decomposition struct {
	Trend    []float64
	Seasonal []float64
	Residual []float64
}

// Decompose performs a simple additive decomposition: trend by moving
// average over period, seasonal by weekday means of the detrended series,
// residual as the remainder. Series shorter than two periods come back with
// the mean as trend and zero seasonal parts.
func Decompose(values []float64, days []time.Weekday, period int) Decomposition {
	n := len(values)
	d := Decomposition{
		Trend:    make([]float64, n),
		Seasonal: make([]float64, n),
		Residual: make([]float64, n),
	}
	if n == 0 {
		return d
	}
	if period <= 0 {
		period = 7
	}

	if n < 2*period || len(days) < n {
		mean := Mean(values)
		for i := range values {
			d.Trend[i] = mean
			d.Residual[i] = values[i] - mean
		}
		return d
	}

	// Trailing moving average as trend, padded at the head with the first
	// computed value.
	ma := MovingAverage(values, period)
	pad := n - len(ma)
	for i := 0; i < n; i++ {
		if i < pad {
			d.Trend[i] = ma[0]
		} else {
			d.Trend[i] = ma[i-pad]
		}
	}

	detrended := make([]float64, n)
	for i := range values {
		detrended[i] = values[i] - d.Trend[i]
	}
	means := WeekdayMeans(detrended, days)
	for i := range values {
		d.Seasonal[i] = means[int(days[i])]
		d.Residual[i] = values[i] - d.Trend[i] - d.Seasonal[i]
	}
	return d
}
