package handler

import (
	"context"
	"time"

	"github.com/fitflow/fitflow/internal/domain"
	"github.com/google/uuid"
)

// MockEngine is a mock implementation of the engine interfaces the handlers
// depend on.
type MockEngine struct {
	analyzeFunc  func(ctx context.Context, userID string, workouts []domain.WorkoutSession, metrics []domain.DailyMetric, exercises []domain.ExerciseCatalogEntry) domain.InsightReport
	generateFunc func(ctx context.Context, req domain.WorkoutRequest, exercises []domain.ExerciseCatalogEntry, metrics []domain.DailyMetric, history []domain.WorkoutSession) (domain.GeneratedWorkout, error)
	healthFunc   func(ctx context.Context) domain.EngineHealth
}

func (m *MockEngine) AnalyzeUser(ctx context.Context, userID string, workouts []domain.WorkoutSession, metrics []domain.DailyMetric, exercises []domain.ExerciseCatalogEntry) domain.InsightReport {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, workouts, metrics, exercises)
	}
	return domain.InsightReport{
		UserID:      userID,
		GeneratedAt: time.Now().UTC(),
		Progress:    domain.ProgressReport{StrengthTrend: domain.TrendSteady, VolumeTrend: domain.TrendSteady, Confidence: 0.6},
		InjuryRisk:  domain.InjuryRiskReport{OverallRisk: 30, RiskLevel: domain.RiskModerate, Confidence: 0.6},
		Plateau:     domain.PlateauReport{Confidence: 0.6},
		TrainingWindows: domain.TrainingWindowReport{
			Primary:    domain.TrainingWindow{TimeOfDay: "evening", StartHour: 16, EndHour: 22},
			Confidence: 0.6,
		},
		Recommendations: domain.RecommendationSet{Immediate: []string{}, ShortTerm: []string{}, LongTerm: []string{}},
		OverallPriority: domain.PriorityLow,
		Confidence:      0.6,
	}
}

func (m *MockEngine) GenerateWorkout(ctx context.Context, req domain.WorkoutRequest, exercises []domain.ExerciseCatalogEntry, metrics []domain.DailyMetric, history []domain.WorkoutSession) (domain.GeneratedWorkout, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req, exercises, metrics, history)
	}
	return domain.GeneratedWorkout{
		ID:          uuid.New(),
		UserID:      req.UserID,
		WorkoutType: req.WorkoutType,
		Main: []domain.GeneratedExercise{{
			ExerciseID: "barbell-back-squat", Name: "Barbell Back Squat",
			TargetSets: 3, TargetRepsMin: 3, TargetRepsMax: 6, TargetRPE: 8, RestSeconds: 180,
		}},
		TargetIntensity: "hard",
		Confidence:      0.7,
	}, nil
}

func (m *MockEngine) HealthCheck(ctx context.Context) domain.EngineHealth {
	if m.healthFunc != nil {
		return m.healthFunc(ctx)
	}
	return domain.EngineHealth{
		Progress:          domain.StatusOperational,
		InjuryRisk:        domain.StatusOperational,
		TrainingWindows:   domain.StatusOperational,
		PlateauDetection:  domain.StatusOperational,
		WorkoutGeneration: domain.StatusOperational,
		LastHealthCheck:   time.Now().UTC(),
	}
}
