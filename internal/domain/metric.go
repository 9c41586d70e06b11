package domain

import (
	"sort"
	"time"
)

// DailyMetric is one day of self-reported wellness data for a user.
// Later entries for the same date overwrite earlier ones upstream; this core
// always receives at most one metric per user per day.
// @Description Daily wellness check-in with sleep, energy, soreness and stress.
type DailyMetric struct {
	// Calendar date of the check-in (time component ignored)
	Date time.Time `json:"date" example:"2024-03-01T00:00:00Z"`
	// Hours slept the previous night
	SleepHours float64 `json:"sleep_hours" example:"7.5"`
	// Subjective energy, 1 (exhausted) to 10 (fully charged)
	Energy int `json:"energy" example:"7" minimum:"1" maximum:"10"`
	// Muscle soreness, 1 (none) to 10 (severe)
	Soreness int `json:"soreness" example:"3" minimum:"1" maximum:"10"`
	// Perceived stress, 1 (relaxed) to 10 (overwhelmed)
	Stress int `json:"stress" example:"4" minimum:"1" maximum:"10"`
	// Heart-rate variability in ms, when a wearable provides it
	HRV *float64 `json:"hrv,omitempty" example:"62.5"`
	// Resting heart rate in bpm
	RestingHR *int `json:"resting_hr,omitempty" example:"54"`
	// Morning body weight in kilograms
	BodyWeightKg *float64 `json:"body_weight_kg,omitempty" example:"81.4"`
}

// SortMetricsByDate returns a copy of metrics ordered oldest first.
func SortMetricsByDate(metrics []DailyMetric) []DailyMetric {
	sorted := make([]DailyMetric, len(metrics))
	copy(sorted, metrics)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
