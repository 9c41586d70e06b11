package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check every engine subsystem against synthetic data",
	RunE: func(cmd *cobra.Command, args []string) error {
		health := newEngine().HealthCheck(cmd.Context())

		rows := []struct {
			name   string
			status domain.ComponentStatus
		}{
			{"progress", health.Progress},
			{"injury risk", health.InjuryRisk},
			{"training windows", health.TrainingWindows},
			{"plateau detection", health.PlateauDetection},
			{"workout generation", health.WorkoutGeneration},
		}

		broken := 0
		for _, row := range rows {
			fmt.Printf("%-20s %s\n", row.name, statusColor(row.status))
			if row.status != domain.StatusOperational {
				broken++
			}
		}
		if broken > 0 {
			return fmt.Errorf("%d subsystem(s) not operational", broken)
		}
		return nil
	},
}

func statusColor(s domain.ComponentStatus) string {
	switch s {
	case domain.StatusOperational:
		return color.GreenString(string(s))
	case domain.StatusDegraded:
		return color.YellowString(string(s))
	default:
		return color.RedString(string(s))
	}
}
