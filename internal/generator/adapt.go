package generator

import (
	"fmt"

	"github.com/fitflow/fitflow/internal/domain"
)

// Adaptation trigger thresholds. Tunable parameters.
const (
	lowReadinessThreshold  = 60.0
	highReadinessThreshold = 85.0
	injuryAdaptThreshold   = 60.0
	plateauAdaptThreshold  = 60.0
)

// adapt applies the adaptation rules in fixed order: readiness, injury,
// equipment, plateau. Each rule mutates the plan at most once per call and
// records why in the adaptation log.
func (g *Generator) adapt(
	w *domain.GeneratedWorkout,
	readiness float64,
	injury domain.InjuryRiskReport,
	plateau domain.PlateauReport,
	req domain.WorkoutRequest,
	exercises []domain.ExerciseCatalogEntry,
) {
	g.adaptReadiness(w, readiness)
	g.adaptInjury(w, injury)
	g.adaptEquipment(w, req, exercises)
	g.adaptPlateau(w, plateau)
}

func (g *Generator) adaptReadiness(w *domain.GeneratedWorkout, readiness float64) {
	switch {
	case readiness < lowReadinessThreshold:
		for i := range w.Main {
			ex := &w.Main[i]
			if ex.TargetSets > 1 {
				ex.TargetSets--
			}
			ex.TargetRPE = clampRPE(ex.TargetRPE - 1)
			ex.RestSeconds += 30
		}
		w.Adaptations.ReadinessAdjustments = append(w.Adaptations.ReadinessAdjustments,
			fmt.Sprintf("Readiness %.0f below %.0f: one set dropped, effort reduced by 1 RPE, rest extended 30s per exercise", readiness, lowReadinessThreshold))
	case readiness > highReadinessThreshold:
		for i := range w.Main {
			w.Main[i].TargetRPE = clampRPE(w.Main[i].TargetRPE + 1)
		}
		w.Adaptations.ReadinessAdjustments = append(w.Adaptations.ReadinessAdjustments,
			fmt.Sprintf("Readiness %.0f above %.0f: effort raised by 1 RPE to exploit the good day", readiness, highReadinessThreshold))
	}
}

func (g *Generator) adaptInjury(w *domain.GeneratedWorkout, injury domain.InjuryRiskReport) {
	if injury.OverallRisk <= injuryAdaptThreshold {
		return
	}
	w.Warmup = append([]domain.GeneratedExercise{preventionWarmup}, w.Warmup...)
	for i := range w.Main {
		w.Main[i].TargetRPE = clampRPE(w.Main[i].TargetRPE - 1)
		w.Main[i].RestSeconds += 15
	}
	w.Adaptations.InjuryAdjustments = append(w.Adaptations.InjuryAdjustments,
		fmt.Sprintf("Injury risk %.0f (%s): prevention warm-up prepended, effort reduced by 1 RPE, rest extended 15s", injury.OverallRisk, injury.RiskLevel))
}

// adaptEquipment swaps any exercise whose equipment is not available for its
// first equipment-compatible alternative from the catalog.
func (g *Generator) adaptEquipment(w *domain.GeneratedWorkout, req domain.WorkoutRequest, exercises []domain.ExerciseCatalogEntry) {
	available := make(map[string]bool, len(req.AvailableEquipment))
	for _, eq := range req.AvailableEquipment {
		available[eq] = true
	}
	byID := make(map[string]domain.ExerciseCatalogEntry, len(exercises))
	for _, e := range exercises {
		byID[e.ID] = e
	}

	for i := range w.Main {
		ex := &w.Main[i]
		if equipmentMet(ex.Equipment, available) {
			continue
		}
		for _, altID := range ex.Alternatives {
			alt, ok := byID[altID]
			if !ok || !alt.EquipmentSatisfiedBy(available) {
				continue
			}
			reason := fmt.Sprintf("Swapped %s for %s: required equipment not available", ex.Name, alt.Name)
			ex.ExerciseID = alt.ID
			ex.Name = alt.Name
			ex.MuscleGroups = append([]string{}, alt.PrimaryMuscles...)
			ex.Equipment = append([]string{}, alt.Equipment...)
			ex.Alternatives = append([]string{}, alt.Alternatives...)
			w.Adaptations.EquipmentSwaps = append(w.Adaptations.EquipmentSwaps, reason)
			break
		}
	}
}

func (g *Generator) adaptPlateau(w *domain.GeneratedWorkout, plateau domain.PlateauReport) {
	risk := plateau.Strength.Probability
	if plateau.Volume.Probability > risk {
		risk = plateau.Volume.Probability
	}
	if risk <= plateauAdaptThreshold {
		return
	}
	for i := 0; i < len(w.Main); i += 2 {
		w.Main[i].TargetRPE = clampRPE(w.Main[i].TargetRPE + 1)
		w.Main[i].Notes = append(w.Main[i].Notes,
			"Push intensity here: pause the eccentric and drive maximal concentric speed to break the stall")
	}
	w.Adaptations.PlateauAdjustments = append(w.Adaptations.PlateauAdjustments,
		fmt.Sprintf("Plateau probability %.0f above %.0f: every other exercise raised 1 RPE with a technique focus", risk, plateauAdaptThreshold))
}

func equipmentMet(equipment []string, available map[string]bool) bool {
	for _, eq := range equipment {
		if !available[eq] {
			return false
		}
	}
	return true
}

func clampRPE(rpe float64) float64 {
	if rpe < 1 {
		return 1
	}
	if rpe > 10 {
		return 10
	}
	return rpe
}
