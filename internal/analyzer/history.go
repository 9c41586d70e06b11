// Package analyzer composes the predictors into domain verdicts. Every
// analyzer returns a fully-populated default instead of an error when the
// history cannot support a real verdict.
package analyzer

import (
	"math"
	"time"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/feature"
	"github.com/fitflow/fitflow/internal/predictor"
	"github.com/fitflow/fitflow/internal/stats"
)

// Workload windows for the acute:chronic ratio.
const (
	acuteWindowDays   = 7
	chronicWindowDays = 28
)

// anchorTime returns the reference "now" for window math: the most recent
// session keeps the whole computation deterministic for identical inputs.
func anchorTime(sorted []domain.WorkoutSession) time.Time {
	if len(sorted) == 0 {
		return time.Time{}
	}
	return sorted[len(sorted)-1].StartedAt
}

// trainingAgeYears estimates training age from the span of the history.
// With no profile available the elapsed time between the first and last
// session is the best proxy we have.
func trainingAgeYears(sorted []domain.WorkoutSession) float64 {
	if len(sorted) < 2 {
		return 0
	}
	span := sorted[len(sorted)-1].StartedAt.Sub(sorted[0].StartedAt)
	return span.Hours() / (24 * 365)
}

// acuteChronicRatio computes the 7d:28d workload ratio and the backing
// loads. Returns ok=false when the chronic window carries no load.
func acuteChronicRatio(sorted []domain.WorkoutSession) (ratio, acute, chronicWeekly float64, ok bool) {
	if len(sorted) == 0 {
		return 0, 0, 0, false
	}
	anchor := anchorTime(sorted)
	acuteFrom := anchor.AddDate(0, 0, -acuteWindowDays)
	chronicFrom := anchor.AddDate(0, 0, -chronicWindowDays)

	var chronicTotal float64
	for _, w := range sorted {
		if w.StartedAt.Before(chronicFrom) {
			continue
		}
		v := w.Volume()
		chronicTotal += v
		if !w.StartedAt.Before(acuteFrom) {
			acute += v
		}
	}

	chronicWeekly = chronicTotal / (chronicWindowDays / 7.0)
	if chronicWeekly <= 0 {
		return 0, acute, 0, false
	}
	return acute / chronicWeekly, acute, chronicWeekly, true
}

// weekOverWeekPct returns the percent change of this week's value against
// last week's, and false when last week has no signal.
func weekOverWeekPct(sorted []domain.WorkoutSession, value func(domain.WorkoutSession) float64) (float64, bool) {
	if len(sorted) == 0 {
		return 0, false
	}
	anchor := anchorTime(sorted)
	weekAgo := anchor.AddDate(0, 0, -7)
	twoWeeksAgo := anchor.AddDate(0, 0, -14)

	var thisWeek, lastWeek float64
	for _, w := range sorted {
		v := value(w)
		switch {
		case !w.StartedAt.Before(weekAgo):
			thisWeek += v
		case !w.StartedAt.Before(twoWeeksAgo):
			lastWeek += v
		}
	}
	if lastWeek <= 0 {
		return 0, false
	}
	return (thisWeek - lastWeek) / lastWeek * 100, true
}

// weekOverWeekMeanPct compares the per-session mean of a value between this
// week and last week. Dividing each week by its session count keeps a change
// in training frequency at constant effort from reading as a change in the
// value itself.
func weekOverWeekMeanPct(sorted []domain.WorkoutSession, value func(domain.WorkoutSession) float64) (float64, bool) {
	if len(sorted) == 0 {
		return 0, false
	}
	anchor := anchorTime(sorted)
	weekAgo := anchor.AddDate(0, 0, -7)
	twoWeeksAgo := anchor.AddDate(0, 0, -14)

	var thisSum, lastSum float64
	var thisN, lastN int
	for _, w := range sorted {
		v := value(w)
		switch {
		case !w.StartedAt.Before(weekAgo):
			thisSum += v
			thisN++
		case !w.StartedAt.Before(twoWeeksAgo):
			lastSum += v
			lastN++
		}
	}
	if thisN == 0 || lastN == 0 {
		return 0, false
	}
	lastMean := lastSum / float64(lastN)
	if lastMean <= 0 {
		return 0, false
	}
	thisMean := thisSum / float64(thisN)
	return (thisMean - lastMean) / lastMean * 100, true
}

// sessionMaxWeight is the heaviest set weight in a session, 0 when none.
func sessionMaxWeight(w domain.WorkoutSession) float64 {
	var best float64
	for _, ex := range w.Exercises {
		if mw, ok := ex.MaxWeight(); ok && mw > best {
			best = mw
		}
	}
	return best
}

// weeklyProgressPct fits per-session max weights against elapsed days and
// converts the slope into percent gained per week relative to the mean.
func weeklyProgressPct(sorted []domain.WorkoutSession) float64 {
	var xs, ys []float64
	if len(sorted) == 0 {
		return 0
	}
	start := sorted[0].StartedAt
	for _, w := range sorted {
		mw := sessionMaxWeight(w)
		if mw <= 0 {
			continue
		}
		xs = append(xs, w.StartedAt.Sub(start).Hours()/24)
		ys = append(ys, mw)
	}
	if len(ys) < 2 {
		return 0
	}
	reg := stats.LinearRegression(xs, ys)
	mean := stats.Mean(ys)
	if mean <= 0 {
		return 0
	}
	return reg.Slope * 7 / mean * 100
}

// daysSinceImprovement finds how long ago a set's max weight last beat the
// running best by more than ImprovementThresholdPct. Never improving counts
// from the first session.
func daysSinceImprovement(sorted []domain.WorkoutSession) int {
	if len(sorted) == 0 {
		return 0
	}
	anchor := anchorTime(sorted)
	lastImprovement := sorted[0].StartedAt

	var best float64
	for _, w := range sorted {
		mw := sessionMaxWeight(w)
		if mw <= 0 {
			continue
		}
		if best == 0 {
			best = mw
			lastImprovement = w.StartedAt
			continue
		}
		if mw > best*(1+predictor.ImprovementThresholdPct/100) {
			best = mw
			lastImprovement = w.StartedAt
		} else if mw > best {
			best = mw
		}
	}
	return int(anchor.Sub(lastImprovement).Hours() / 24)
}

// weeklyVolumeSeries buckets session volume into calendar weeks ending at
// the anchor, oldest first.
func weeklyVolumeSeries(sorted []domain.WorkoutSession) []float64 {
	if len(sorted) == 0 {
		return nil
	}
	anchor := anchorTime(sorted)
	first := sorted[0].StartedAt
	weeks := int(anchor.Sub(first).Hours()/(24*7)) + 1

	series := make([]float64, weeks)
	for _, w := range sorted {
		idx := int(w.StartedAt.Sub(first).Hours() / (24 * 7))
		if idx >= 0 && idx < weeks {
			series[idx] += w.Volume()
		}
	}
	return series
}

// weeklyVolumeProgressPct mirrors weeklyProgressPct on the weekly volume
// series.
func weeklyVolumeProgressPct(sorted []domain.WorkoutSession) float64 {
	series := weeklyVolumeSeries(sorted)
	if len(series) < 2 {
		return 0
	}
	xs := make([]float64, len(series))
	for i := range xs {
		xs[i] = float64(i)
	}
	reg := stats.LinearRegression(xs, series)
	mean := stats.Mean(series)
	if mean <= 0 {
		return 0
	}
	return reg.Slope / mean * 100
}

// daysSinceVolumeImprovement mirrors daysSinceImprovement on weekly volume.
func daysSinceVolumeImprovement(sorted []domain.WorkoutSession) int {
	series := weeklyVolumeSeries(sorted)
	if len(series) == 0 {
		return 0
	}
	lastIdx := 0
	var best float64
	for i, v := range series {
		if v <= 0 {
			continue
		}
		if best == 0 || v > best*(1+predictor.ImprovementThresholdPct/100) {
			best = v
			lastIdx = i
			continue
		}
		if v > best {
			best = v
		}
	}
	return (len(series) - 1 - lastIdx) * 7
}

// rpeSpread is the standard deviation of all rated sets.
func rpeSpread(sorted []domain.WorkoutSession) (float64, bool) {
	var rpes []float64
	for _, w := range sorted {
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if s.RPE != nil {
					rpes = append(rpes, *s.RPE)
				}
			}
		}
	}
	if len(rpes) < 2 {
		return 0, false
	}
	return stats.StdDev(rpes), true
}

// grinderSetShare is the fraction of rated sets at RPE >= 9.5.
func grinderSetShare(sorted []domain.WorkoutSession) (float64, bool) {
	var rated, grinders int
	for _, w := range sorted {
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if s.RPE == nil {
					continue
				}
				rated++
				if *s.RPE >= 9.5 {
					grinders++
				}
			}
		}
	}
	if rated == 0 {
		return 0, false
	}
	return float64(grinders) / float64(rated), true
}

// readinessTrend fits readiness scores over the last 7 metric days and
// squashes the slope into [-1,1].
func readinessTrend(metrics []domain.DailyMetric) (float64, bool) {
	if len(metrics) < 3 {
		return 0, false
	}
	sorted := domain.SortMetricsByDate(metrics)
	if len(sorted) > 7 {
		sorted = sorted[len(sorted)-7:]
	}
	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, m := range sorted {
		xs[i] = float64(i)
		ys[i] = feature.ReadinessScore(m)
	}
	reg := stats.LinearRegression(xs, ys)
	return math.Tanh(reg.Slope / 10 * reg.Confidence), true
}
