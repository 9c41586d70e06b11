package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fitflow/fitflow/internal/engine"
	"github.com/fitflow/fitflow/internal/generator"
	"github.com/fitflow/fitflow/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitcli",
	Short: "Run the FitFlow analysis engine offline",
	Long: `fitcli runs the FitFlow training analysis and workout generation
engine over local JSON fixture files, without the HTTP API.

QUICK START:

  $ fitcli demo --out fixture.json           # Emit a synthetic training history
  $ fitcli analyze --data fixture.json       # Analyze it
  $ fitcli generate --data fixture.json      # Generate an adapted workout
  $ fitcli health                            # Check every engine subsystem`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.SetupParams{LogLevel: "warn"})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(demoCmd)
}

func newEngine() *engine.Engine {
	return engine.New(generator.New(), nil, logrus.StandardLogger())
}

func readJSONFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
