// Command citytsp generates a random symmetric intercity map and solves the
// Travelling Salesman Problem on it twice: exactly, by brute force, and with
// a bounded random-restart heuristic.
//
// Run with no arguments it reproduces the canonical demo configuration: a
// 10-city map with the degenerate weight range [1, 1), which the generator
// rejects — the run then falls back to an empty map and both solvers report
// failure on the structured error channel instead of crashing.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "citytsp",
		Short: "Random-map TSP demo: brute force vs. random restart",
		Long: "citytsp generates a random symmetric city map and prints the optimal " +
			"visiting order found by exhaustive search next to the best order found " +
			"by a fixed budget of random restarts.",
		RunE:          runSolve,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags. The weight defaults are deliberately degenerate (1,1): the
	// half-open range [1, 1) is empty, so the stock invocation exercises the
	// rejection-and-fallback path end to end.
	rootCmd.Flags().Int("cities", 10, "Number of cities in the generated map")
	rootCmd.Flags().Uint16("min-weight", 1, "Inclusive lower bound of edge weights")
	rootCmd.Flags().Uint16("max-weight", 1, "Exclusive upper bound of edge weights")
	rootCmd.Flags().Int64("seed", 0, "Random seed (0 selects the fixed default stream)")
	rootCmd.Flags().Int("iterations", 32, "Random-restart budget for the heuristic solver")

	// Bind flags to viper.
	viper.BindPFlag("cities", rootCmd.Flags().Lookup("cities"))
	viper.BindPFlag("min-weight", rootCmd.Flags().Lookup("min-weight"))
	viper.BindPFlag("max-weight", rootCmd.Flags().Lookup("max-weight"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("iterations", rootCmd.Flags().Lookup("iterations"))

	// Env vars: CITYTSP_CITIES, CITYTSP_SEED, etc.
	viper.SetEnvPrefix("CITYTSP")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print citytsp version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("citytsp %s\n", version)
		},
	}
}
