package domain

import "time"

// Priority ranks how urgently a recommendation or report should be acted on.
// @Description Recommendation priority.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Trend labels the direction of a tracked quantity.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendSteady    Trend = "steady"
	TrendDeclining Trend = "declining"
	TrendUnknown   Trend = "unknown"
)

// RiskLevel buckets a 0-100 risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevelFor buckets an overall risk score: low <=25, moderate <=50,
// high <=75, critical above.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score <= 25:
		return RiskLow
	case score <= 50:
		return RiskModerate
	case score <= 75:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// PlateauSeverity escalates with plateau duration and probability.
type PlateauSeverity string

const (
	PlateauNone     PlateauSeverity = "none"
	PlateauMild     PlateauSeverity = "mild"
	PlateauModerate PlateauSeverity = "moderate"
	PlateauSevere   PlateauSeverity = "severe"
	PlateauChronic  PlateauSeverity = "chronic"
)

// Intervention is a concrete recommended action with its expected payoff.
// @Description Recommended intervention with priority and expected outcome.
type Intervention struct {
	Action   string   `json:"action" example:"Introduce a deload week at 60% volume"`
	Priority Priority `json:"priority" example:"high"`
	// How long the intervention should run before re-assessing
	ExpectedDurationDays int `json:"expected_duration_days" example:"7"`
	// Heuristic probability of the intervention working, 0-1
	SuccessProbability float64 `json:"success_probability" example:"0.7"`
}

// ProgressReport is the progress analyzer's verdict.
// @Description Strength and volume progress assessment.
type ProgressReport struct {
	StrengthTrend Trend `json:"strength_trend" example:"improving"`
	VolumeTrend   Trend `json:"volume_trend" example:"steady"`
	// Estimated weekly strength gain, percent
	WeeklyGainPct float64 `json:"weekly_gain_pct" example:"0.9"`
	// Compounded projections, percent gain over the horizon
	Projected4WeekPct  float64 `json:"projected_4_week_pct" example:"3.7"`
	Projected12WeekPct float64 `json:"projected_12_week_pct" example:"11.4"`
	// Projected weekly volume growth, percent
	VolumeGrowthPct float64        `json:"volume_growth_pct" example:"1.2"`
	Evidence        []string       `json:"evidence"`
	Interventions   []Intervention `json:"interventions"`
	Confidence      float64        `json:"confidence" example:"0.65" minimum:"0" maximum:"1"`
}

// RiskWarning is a structured injury-risk warning keyed by a stable code.
// @Description Structured injury-risk warning.
type RiskWarning struct {
	// Stable machine-readable code, e.g. acute_spike, poor_recovery
	Code     string    `json:"code" example:"acute_spike"`
	Message  string    `json:"message" example:"Training load jumped 45% above your 4-week average"`
	Severity RiskLevel `json:"severity" example:"high"`
}

// InjuryRiskReport combines the three injury-risk sub-scores.
// @Description Multi-factor injury risk assessment.
type InjuryRiskReport struct {
	// Weighted overall risk, 0-100
	OverallRisk float64   `json:"overall_risk" example:"38" minimum:"0" maximum:"100"`
	RiskLevel   RiskLevel `json:"risk_level" example:"moderate"`
	// Sub-scores, 0-100 each
	TrainingLoadRisk    float64 `json:"training_load_risk" example:"25"`
	ReadinessRisk       float64 `json:"readiness_risk" example:"55"`
	MovementQualityRisk float64 `json:"movement_quality_risk" example:"30"`
	// Acute:chronic workload ratio backing the training-load score
	ACWR float64 `json:"acwr" example:"1.15"`
	// Structured warnings, empty when no threshold crossed
	Warnings []RiskWarning `json:"warnings"`
	// Up to 3 prioritized prevention actions
	PreventionActions []string `json:"prevention_actions"`
	Evidence          []string `json:"evidence"`
	Confidence        float64  `json:"confidence" example:"0.7" minimum:"0" maximum:"1"`
}

// PlateauVerdict is the plateau detector's output for one dimension.
// @Description Plateau verdict for strength or volume.
type PlateauVerdict struct {
	Detected bool `json:"detected" example:"false"`
	// Plateau probability, 0-100
	Probability  float64         `json:"probability" example:"42" minimum:"0" maximum:"100"`
	Severity     PlateauSeverity `json:"severity" example:"none"`
	DurationDays int             `json:"duration_days" example:"0"`
}

// PlateauReport carries the independent strength and volume verdicts.
// @Description Strength and volume plateau analysis.
type PlateauReport struct {
	Strength      PlateauVerdict `json:"strength"`
	Volume        PlateauVerdict `json:"volume"`
	Evidence      []string       `json:"evidence"`
	Interventions []Intervention `json:"interventions"`
	Confidence    float64        `json:"confidence" example:"0.6" minimum:"0" maximum:"1"`
}

// TrainingWindow is a preferred time-of-day band for training.
// @Description Preferred training time window.
type TrainingWindow struct {
	// morning, midday or evening
	TimeOfDay string `json:"time_of_day" example:"evening"`
	StartHour int    `json:"start_hour" example:"17"`
	EndHour   int    `json:"end_hour" example:"21"`
	// Share of sampled sessions falling in the window, 0-1
	SessionShare float64 `json:"session_share" example:"0.62"`
}

// TrainingWindowReport describes when the user habitually trains.
// @Description Training time-of-day preference analysis.
type TrainingWindowReport struct {
	Primary    TrainingWindow  `json:"primary"`
	Secondary  *TrainingWindow `json:"secondary,omitempty"`
	SampleSize int             `json:"sample_size" example:"24"`
	Confidence float64         `json:"confidence" example:"0.65" minimum:"0" maximum:"1"`
}

// RecommendationSet groups recommendations by horizon.
// @Description Recommendations grouped by time horizon.
type RecommendationSet struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// InsightReport is the orchestrator's combined output. Every field is always
// populated; sparse input degrades confidence, never shape.
// @Description Combined multi-factor analysis report.
type InsightReport struct {
	UserID      string    `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	GeneratedAt time.Time `json:"generated_at" example:"2024-03-02T08:00:00Z"`

	Progress        ProgressReport       `json:"progress"`
	InjuryRisk      InjuryRiskReport     `json:"injury_risk"`
	Plateau         PlateauReport        `json:"plateau"`
	TrainingWindows TrainingWindowReport `json:"training_windows"`

	Recommendations RecommendationSet `json:"recommendations"`
	OverallPriority Priority          `json:"overall_priority" example:"medium"`
	// Mean of the four sub-confidences, missing ones counted as 0
	Confidence float64 `json:"confidence" example:"0.58" minimum:"0" maximum:"1"`
}

// ComponentStatus reports a subsystem's health-check outcome.
type ComponentStatus string

const (
	StatusOperational ComponentStatus = "operational"
	StatusDegraded    ComponentStatus = "degraded"
	StatusError       ComponentStatus = "error"
)

// EngineHealth is the health-check result across analysis subsystems.
// @Description Per-subsystem health of the analysis engine.
type EngineHealth struct {
	Progress          ComponentStatus `json:"progress" example:"operational"`
	InjuryRisk        ComponentStatus `json:"injury_risk" example:"operational"`
	TrainingWindows   ComponentStatus `json:"training_windows" example:"operational"`
	PlateauDetection  ComponentStatus `json:"plateau_detection" example:"operational"`
	WorkoutGeneration ComponentStatus `json:"workout_generation" example:"operational"`
	LastHealthCheck   time.Time       `json:"last_health_check" example:"2024-03-02T08:00:00Z"`
}
