// Package engine orchestrates the domain analyzers into one combined insight
// report and drives the workout generator. Every public entry point returns a
// usable value; failures inside a single analysis degrade to that analysis's
// default instead of surfacing.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fitflow/fitflow/internal/analyzer"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/generator"
	"github.com/fitflow/fitflow/internal/telemetry/metrics"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Priority escalation thresholds on the overall injury risk.
const (
	criticalInjuryRisk = 70.0
	highInjuryRisk     = 50.0
	strongProgressPct  = 1.5
)

// Engine fans analysis out across the four analyzers and combines their
// reports. Stateless between calls; safe for concurrent use.
type Engine struct {
	progress *analyzer.Progress
	injury   *analyzer.InjuryRisk
	plateau  *analyzer.Plateau
	window   *analyzer.TrainingWindow
	gen      *generator.Generator
	metrics  *metrics.Manager
	log      *logrus.Logger
}

// New wires the engine. metricsManager may be nil; log falls back to the
// standard logger.
func New(gen *generator.Generator, metricsManager *metrics.Manager, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		progress: analyzer.NewProgress(),
		injury:   analyzer.NewInjuryRisk(),
		plateau:  analyzer.NewPlateau(),
		window:   analyzer.NewTrainingWindow(),
		gen:      gen,
		metrics:  metricsManager,
		log:      log,
	}
}

// AnalyzeUser runs the four analyses concurrently and combines them. It
// never fails: a panicking or erroring analysis is replaced by its static
// default, and a failure in the combination step yields a last-resort
// default report. The exercise catalog feeds the recommendation step,
// where plateau interventions name a concrete variation when one exists.
func (e *Engine) AnalyzeUser(
	ctx context.Context,
	userID string,
	workouts []domain.WorkoutSession,
	metricEntries []domain.DailyMetric,
	exercises []domain.ExerciseCatalogEntry,
) (report domain.InsightReport) {
	tracer := otel.Tracer("fitflow/engine")
	ctx, span := tracer.Start(ctx, "engine.AnalyzeUser",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("workouts.count", len(workouts)),
			attribute.Int("metrics.count", len(metricEntries)),
		),
	)
	defer span.End()

	// Last-resort boundary: even a bug in the combination step must not
	// reach the caller.
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("panic", r).Error("analysis combination failed, serving defaults")
			e.metrics.CountRecoveredPanic()
			report = e.defaultReport(userID)
		}
	}()

	var (
		wg             sync.WaitGroup
		progressReport domain.ProgressReport
		injuryReport   domain.InjuryRiskReport
		plateauReport  domain.PlateauReport
		windowReport   domain.TrainingWindowReport
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		progressReport = runTask(e, "progress", e.progress.Default,
			func() domain.ProgressReport { return e.progress.Analyze(ctx, workouts, metricEntries) })
	}()
	go func() {
		defer wg.Done()
		injuryReport = runTask(e, "injury_risk", e.injury.Default,
			func() domain.InjuryRiskReport { return e.injury.Analyze(ctx, workouts, metricEntries) })
	}()
	go func() {
		defer wg.Done()
		plateauReport = runTask(e, "plateau", e.plateau.Default,
			func() domain.PlateauReport { return e.plateau.Analyze(ctx, workouts, metricEntries) })
	}()
	go func() {
		defer wg.Done()
		windowReport = runTask(e, "training_window", e.window.Default,
			func() domain.TrainingWindowReport { return e.window.Analyze(ctx, workouts) })
	}()
	wg.Wait()

	report = domain.InsightReport{
		UserID:          userID,
		GeneratedAt:     time.Now().UTC(),
		Progress:        progressReport,
		InjuryRisk:      injuryReport,
		Plateau:         plateauReport,
		TrainingWindows: windowReport,
	}
	report.Recommendations = e.recommendations(report, workouts, exercises, len(workouts)+len(metricEntries) == 0)
	report.OverallPriority = overallPriority(report)
	report.Confidence = (progressReport.Confidence + injuryReport.Confidence +
		plateauReport.Confidence + windowReport.Confidence) / 4

	span.SetAttributes(
		attribute.String("report.priority", string(report.OverallPriority)),
		attribute.Float64("report.confidence", report.Confidence),
	)
	return report
}

// GenerateWorkout delegates to the workout generator and counts successes.
func (e *Engine) GenerateWorkout(
	ctx context.Context,
	req domain.WorkoutRequest,
	exercises []domain.ExerciseCatalogEntry,
	metricEntries []domain.DailyMetric,
	history []domain.WorkoutSession,
) (domain.GeneratedWorkout, error) {
	workout, err := e.gen.Generate(ctx, req, exercises, metricEntries, history)
	if err != nil {
		return domain.GeneratedWorkout{}, err
	}
	e.metrics.CountGeneratedWorkout()
	return workout, nil
}

// runTask executes one analysis with a panic boundary; a recovered panic
// degrades to the analyzer's static default.
func runTask[T any](e *Engine, name string, fallback func() T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithFields(logrus.Fields{"analyzer": name, "panic": r}).
				Error("analysis task failed, substituting default")
			e.metrics.CountRecoveredPanic()
			e.metrics.CountAnalysis(name, "recovered")
			out = fallback()
		}
	}()
	out = fn()
	e.metrics.CountAnalysis(name, "ok")
	return out
}

func (e *Engine) defaultReport(userID string) domain.InsightReport {
	report := domain.InsightReport{
		UserID:          userID,
		GeneratedAt:     time.Now().UTC(),
		Progress:        e.progress.Default(),
		InjuryRisk:      e.injury.Default(),
		Plateau:         e.plateau.Default(),
		TrainingWindows: e.window.Default(),
	}
	report.Recommendations = e.recommendations(report, nil, nil, true)
	report.OverallPriority = domain.PriorityLow
	report.Confidence = (report.Progress.Confidence + report.InjuryRisk.Confidence +
		report.Plateau.Confidence + report.TrainingWindows.Confidence) / 4
	return report
}

// recommendations distills the sub-reports into immediate, short-term and
// long-term actions. Best effort: lists may stay empty when nothing crossed
// a threshold.
func (e *Engine) recommendations(
	r domain.InsightReport,
	workouts []domain.WorkoutSession,
	exercises []domain.ExerciseCatalogEntry,
	noData bool,
) domain.RecommendationSet {
	set := domain.RecommendationSet{
		Immediate: []string{},
		ShortTerm: []string{},
		LongTerm:  []string{},
	}

	if noData {
		set.Immediate = append(set.Immediate, "Start tracking daily metrics for personalized insights")
		set.ShortTerm = append(set.ShortTerm, "Log at least three workouts to unlock progress and plateau analysis")
		set.LongTerm = append(set.LongTerm, "Build a consistent training routine of 2-4 sessions per week")
		return set
	}

	if r.InjuryRisk.OverallRisk > highInjuryRisk {
		set.Immediate = append(set.Immediate, r.InjuryRisk.PreventionActions...)
	}
	for _, iv := range r.Plateau.Interventions {
		if iv.Priority == domain.PriorityHigh || iv.Priority == domain.PriorityCritical {
			set.Immediate = append(set.Immediate, iv.Action)
		} else {
			set.ShortTerm = append(set.ShortTerm, iv.Action)
		}
	}
	for _, iv := range r.Progress.Interventions {
		set.ShortTerm = append(set.ShortTerm, iv.Action)
	}

	if r.Plateau.Strength.Detected || r.Plateau.Volume.Detected {
		if s := variationSuggestion(workouts, exercises); s != "" {
			set.ShortTerm = append(set.ShortTerm, s)
		}
	}

	if r.TrainingWindows.Confidence > 0.5 {
		set.LongTerm = append(set.LongTerm,
			"Schedule demanding sessions in your "+r.TrainingWindows.Primary.TimeOfDay+" window, where you train most consistently")
	}
	if r.Progress.StrengthTrend == domain.TrendImproving {
		set.LongTerm = append(set.LongTerm, "Current programming is working; plan the next block around the same progression")
	}

	return set
}

// variationSuggestion names a catalog alternative for the user's most
// trained exercise. Empty when the catalog has no entry or no alternative
// for it.
func variationSuggestion(workouts []domain.WorkoutSession, exercises []domain.ExerciseCatalogEntry) string {
	if len(workouts) == 0 || len(exercises) == 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			counts[ex.ExerciseID]++
		}
	}

	// Ties break on id so the suggestion is stable across runs.
	var topID string
	var topN int
	for id, n := range counts {
		if n > topN || (n == topN && (topID == "" || id < topID)) {
			topID, topN = id, n
		}
	}

	byID := make(map[string]domain.ExerciseCatalogEntry, len(exercises))
	for _, entry := range exercises {
		byID[entry.ID] = entry
	}
	entry, ok := byID[topID]
	if !ok {
		return ""
	}
	for _, altID := range entry.Alternatives {
		if alt, found := byID[altID]; found {
			return fmt.Sprintf("Rotate %s in for %s for a few weeks to break the adaptation pattern", alt.Name, entry.Name)
		}
	}
	return ""
}

func overallPriority(r domain.InsightReport) domain.Priority {
	switch {
	case r.InjuryRisk.OverallRisk > criticalInjuryRisk:
		return domain.PriorityCritical
	case r.InjuryRisk.OverallRisk > highInjuryRisk:
		return domain.PriorityHigh
	case r.Plateau.Strength.Severity == domain.PlateauSevere || r.Plateau.Strength.Severity == domain.PlateauChronic:
		return domain.PriorityHigh
	case r.Plateau.Strength.Detected || r.Plateau.Volume.Detected:
		return domain.PriorityMedium
	case r.Progress.WeeklyGainPct > strongProgressPct:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
