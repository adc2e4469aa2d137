// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	scenarioPath string
	logLevel     string
	maxRequests  int64
	traceLevel   int
)

var rootCmd = &cobra.Command{
	Use:   "queue-sim",
	Short: "Discrete-event simulator for single-server FIFO queueing networks",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario to batch-means convergence (or a request cap, whichever comes first)",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		logrus.Infof("Loading scenario from %s", scenarioPath)
		result, err := runScenario(scenarioPath, maxRequests, traceLevel)
		if err != nil {
			return err
		}

		logrus.Infof("Simulation complete: %d departures, clock=%dns", result.Departures, result.ClockNs)
		result.Kernel.Report(os.Stdout)
		if result.Converged {
			mean, halfWidth, numBatches := result.Analyzer.Result()
			logrus.Infof("Batch-means converged after %d batches: mean=%.4fms half-width=%.4fms (rel=%.4f)",
				numBatches, mean, halfWidth, halfWidth/mean)
		} else {
			logrus.Warnf("Batch-means target precision not reached within %d requests", maxRequests)
		}
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "examples/mm1.yaml", "Path to a YAML scenario config")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().Int64Var(&maxRequests, "max-requests", 2_000_000, "Safety cap on processed requests if batch-means never converges")
	runCmd.Flags().IntVar(&traceLevel, "trace", 0, "Kernel trace threshold (0 disables, 1 is library diagnostics)")

	rootCmd.AddCommand(runCmd)
}
