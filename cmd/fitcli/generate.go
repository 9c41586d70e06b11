package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/internal/seed"
	"github.com/spf13/cobra"
)

var (
	generateDataFile string
	generateType     string
	generateDuration int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an adapted workout from a fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		var fix fixture
		if err := readJSONFile(generateDataFile, &fix); err != nil {
			return err
		}

		seedCatalogIfEmpty(&fix)
		req := workoutRequest(fix)
		workout, err := newEngine().GenerateWorkout(cmd.Context(), req, fix.Exercises, fix.Metrics, fix.Workouts)
		if err != nil {
			return fmt.Errorf("generate workout: %w", err)
		}
		printWorkout(workout)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateDataFile, "data", "fixture.json", "fixture file with workouts, metrics and exercises")
	generateCmd.Flags().StringVar(&generateType, "type", "strength", "workout type when the fixture has no request")
	generateCmd.Flags().IntVar(&generateDuration, "duration", 60, "target duration in minutes when the fixture has no request")
}

// workoutRequest uses the fixture's embedded request when present, otherwise
// builds one from flags assuming a fully equipped gym.
func workoutRequest(fix fixture) domain.WorkoutRequest {
	if fix.Request != nil {
		return *fix.Request
	}
	return domain.WorkoutRequest{
		UserID:                fix.UserID,
		WorkoutType:           domain.WorkoutType(generateType),
		TargetDurationMinutes: generateDuration,
		AvailableEquipment:    []string{"barbell", "rack", "bench", "dumbbell", "pullup-bar"},
		FitnessLevel:          domain.LevelIntermediate,
	}
}

func printWorkout(w domain.GeneratedWorkout) {
	bold := color.New(color.Bold)

	bold.Printf("%s workout (%s intensity)\n\n", w.WorkoutType, w.TargetIntensity)

	printBlock("Warm-up", w.Warmup)
	printBlock("Main", w.Main)
	printBlock("Cool-down", w.Cooldown)

	logGroups := []struct {
		title string
		items []string
	}{
		{"Readiness", w.Adaptations.ReadinessAdjustments},
		{"Injury", w.Adaptations.InjuryAdjustments},
		{"Equipment", w.Adaptations.EquipmentSwaps},
		{"Plateau", w.Adaptations.PlateauAdjustments},
	}
	for _, g := range logGroups {
		for _, reason := range g.items {
			color.Yellow("%s: %s", g.title, reason)
		}
	}

	fmt.Printf("\n%d total sets, avg intensity %.1f RPE, confidence %.2f\n",
		w.Metadata.TotalSets, w.Metadata.AvgIntensity, w.Confidence)
}

func printBlock(title string, exercises []domain.GeneratedExercise) {
	if len(exercises) == 0 {
		return
	}
	color.New(color.Bold).Println(title)
	for _, ex := range exercises {
		line := fmt.Sprintf("  %-28s %d x %d-%d", ex.Name, ex.TargetSets, ex.TargetRepsMin, ex.TargetRepsMax)
		if ex.TargetRPE > 0 {
			line += fmt.Sprintf(" @ RPE %.1f", ex.TargetRPE)
		}
		if ex.RestSeconds > 0 {
			line += fmt.Sprintf(", rest %ds", ex.RestSeconds)
		}
		fmt.Println(line)
		for _, note := range ex.Notes {
			fmt.Printf("    %s\n", note)
		}
	}
	fmt.Println()
}

func seedCatalogIfEmpty(fix *fixture) {
	if len(fix.Exercises) == 0 {
		fix.Exercises = seed.Catalog()
	}
}
