package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/spf13/cobra"
)

var analyzeDataFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a training history fixture",
	RunE: func(cmd *cobra.Command, args []string) error {
		var fix fixture
		if err := readJSONFile(analyzeDataFile, &fix); err != nil {
			return err
		}

		report := newEngine().AnalyzeUser(cmd.Context(), fix.UserID, fix.Workouts, fix.Metrics, fix.Exercises)
		printReport(report)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDataFile, "data", "fixture.json", "fixture file with workouts, metrics and exercises")
}

func printReport(r domain.InsightReport) {
	bold := color.New(color.Bold)

	bold.Printf("Analysis for %s\n\n", r.UserID)

	bold.Println("Progress")
	fmt.Printf("  strength: %s  volume: %s\n", trendColor(r.Progress.StrengthTrend), trendColor(r.Progress.VolumeTrend))
	fmt.Printf("  weekly gain %.1f%%, projected %.1f%% over 12 weeks\n\n", r.Progress.WeeklyGainPct, r.Progress.Projected12WeekPct)

	bold.Println("Injury risk")
	fmt.Printf("  overall %s (%.0f/100), ACWR %.2f\n", riskColor(r.InjuryRisk.RiskLevel), r.InjuryRisk.OverallRisk, r.InjuryRisk.ACWR)
	for _, w := range r.InjuryRisk.Warnings {
		color.Yellow("  ! %s", w.Message)
	}
	fmt.Println()

	bold.Println("Plateau")
	fmt.Printf("  strength %.0f%% (%s), volume %.0f%% (%s)\n\n",
		r.Plateau.Strength.Probability, r.Plateau.Strength.Severity,
		r.Plateau.Volume.Probability, r.Plateau.Volume.Severity)

	bold.Println("Training window")
	fmt.Printf("  %s (%02d:00-%02d:00), %.0f%% of sessions\n\n",
		r.TrainingWindows.Primary.TimeOfDay,
		r.TrainingWindows.Primary.StartHour, r.TrainingWindows.Primary.EndHour,
		r.TrainingWindows.Primary.SessionShare*100)

	printRecommendations(r.Recommendations)

	fmt.Printf("priority %s, confidence %.2f\n", r.OverallPriority, r.Confidence)
}

func printRecommendations(set domain.RecommendationSet) {
	groups := []struct {
		title string
		items []string
	}{
		{"Do now", set.Immediate},
		{"Next few weeks", set.ShortTerm},
		{"Long term", set.LongTerm},
	}
	for _, g := range groups {
		if len(g.items) == 0 {
			continue
		}
		color.New(color.Bold).Println(g.title)
		for _, item := range g.items {
			fmt.Printf("  - %s\n", item)
		}
	}
	fmt.Println()
}

func trendColor(t domain.Trend) string {
	switch t {
	case domain.TrendImproving:
		return color.GreenString(string(t))
	case domain.TrendDeclining:
		return color.RedString(string(t))
	default:
		return string(t)
	}
}

func riskColor(l domain.RiskLevel) string {
	switch l {
	case domain.RiskLow:
		return color.GreenString(string(l))
	case domain.RiskModerate:
		return color.YellowString(string(l))
	default:
		return color.RedString(string(l))
	}
}
