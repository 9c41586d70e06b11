package analyzer

import (
	"context"

	"github.com/fitflow/fitflow/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// TrainingWindow derives when the user habitually trains from session start
// hours. Scheduling around the habitual window beats fighting it.
type TrainingWindow struct{}

func NewTrainingWindow() *TrainingWindow { return &TrainingWindow{} }

// Named windows over local start hours. Night sessions (22-05) fold into
// the nearest window by convention.
var windows = []domain.TrainingWindow{
	{TimeOfDay: "morning", StartHour: 5, EndHour: 11},
	{TimeOfDay: "midday", StartHour: 11, EndHour: 16},
	{TimeOfDay: "evening", StartHour: 16, EndHour: 22},
}

const minSessionsForWindow = 3

// Default assumes an evening preference, the most common across users.
func (a *TrainingWindow) Default() domain.TrainingWindowReport {
	return domain.TrainingWindowReport{
		Primary:    domain.TrainingWindow{TimeOfDay: "evening", StartHour: 16, EndHour: 22},
		Confidence: 0.3,
	}
}

// Analyze never returns an error; short history degrades to Default.
func (a *TrainingWindow) Analyze(ctx context.Context, workouts []domain.WorkoutSession) domain.TrainingWindowReport {
	tracer := otel.Tracer("fitflow/analyzer")
	_, span := tracer.Start(ctx, "analyzer.TrainingWindow")
	defer span.End()

	if len(workouts) < minSessionsForWindow {
		return a.Default()
	}

	counts := make([]int, len(windows))
	for _, w := range workouts {
		counts[windowIndex(w.StartedAt.Hour())]++
	}

	primary, secondary := 0, -1
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[primary] {
			secondary = primary
			primary = i
		} else if secondary == -1 || counts[i] > counts[secondary] {
			secondary = i
		}
	}

	total := float64(len(workouts))
	report := domain.TrainingWindowReport{
		Primary:    windows[primary],
		SampleSize: len(workouts),
	}
	report.Primary.SessionShare = float64(counts[primary]) / total
	// Confidence grows with how dominant the primary window is.
	report.Confidence = 0.3 + 0.6*report.Primary.SessionShare

	if secondary >= 0 && counts[secondary] > 0 {
		sec := windows[secondary]
		sec.SessionShare = float64(counts[secondary]) / total
		report.Secondary = &sec
	}

	span.SetAttributes(
		attribute.String("window.primary", report.Primary.TimeOfDay),
		attribute.Int("window.sample_size", report.SampleSize),
	)
	return report
}

func windowIndex(hour int) int {
	switch {
	case hour >= 5 && hour < 11:
		return 0
	case hour >= 11 && hour < 16:
		return 1
	default:
		return 2
	}
}
