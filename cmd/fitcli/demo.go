package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fitflow/fitflow/internal/seed"
	"github.com/spf13/cobra"
)

var (
	demoOutFile string
	demoWeeks   int
	demoSeed    uint64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit a synthetic training-history fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, metrics := seed.History("demo-user", demoWeeks, demoSeed)
		fix := fixture{
			UserID:    "demo-user",
			Workouts:  workouts,
			Metrics:   metrics,
			Exercises: seed.Catalog(),
		}

		raw, err := json.MarshalIndent(fix, "", "  ")
		if err != nil {
			return err
		}

		if demoOutFile == "" {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(demoOutFile, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", demoOutFile, err)
		}
		color.Green("wrote %d workouts and %d metrics to %s", len(workouts), len(metrics), demoOutFile)
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoOutFile, "out", "", "write the fixture to this file instead of stdout")
	demoCmd.Flags().IntVar(&demoWeeks, "weeks", 8, "weeks of history to fabricate")
	demoCmd.Flags().Uint64Var(&demoSeed, "seed", seed.DefaultSeed, "random seed; same seed, same fixture")
}
