package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/citytsp/citymap"
	"github.com/katalvlaran/citytsp/tsp"
)

// runSolve generates the map and runs both solvers.
//
// Failure policy (per solver and for generation): log at error severity on
// the structured channel and keep going — a failed generation substitutes
// the empty map, a failed solver simply prints nothing. The process never
// aborts on a solver failure.
func runSolve(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	var (
		numCities = viper.GetInt("cities")
		wr        = citymap.WeightRange{
			Low:  uint16(viper.GetUint("min-weight")),
			High: uint16(viper.GetUint("max-weight")),
		}
		seed = viper.GetInt64("seed")
	)

	// Generation failure falls back to the empty map; the solvers then
	// reject it and report through the same channel.
	m, err := citymap.Generate(numCities, wr, rngForSeed(seed))
	if err != nil {
		logger.Error().
			Err(err).
			Int("cities", numCities).
			Uint16("min_weight", wr.Low).
			Uint16("max_weight", wr.High).
			Msg("map generation failed; continuing with an empty map")
		m = citymap.Empty()
	}

	// Exact solver.
	if res, serr := tsp.SolveExact(m); serr != nil {
		logger.Error().Err(serr).Msg("brute force TSP finding failed")
	} else {
		printResult("Brute Force", m, res)
	}

	// Heuristic solver.
	opts := tsp.Options{
		Iterations: viper.GetInt("iterations"),
		Seed:       seed,
	}
	if res, serr := tsp.SolveHeuristic(m, opts); serr != nil {
		logger.Error().Err(serr).Msg("random restart TSP finding failed")
	} else {
		printResult("Random Restart", m, res)
	}

	return nil
}

// newLogger builds the structured error channel: console-formatted zerolog
// on stderr, error level and above only.
func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.ErrorLevel).
		With().Timestamp().Logger()
}

// rngForSeed maps the --seed flag to an injected random source.
// Zero returns nil, which selects the library's fixed default stream.
func rngForSeed(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewSource(seed))
}

// printResult writes one solver's outcome to stdout: the map, the visiting
// order, and its cost.
func printResult(method string, m *citymap.DistanceMatrix, res tsp.Result) {
	fmt.Printf("(Using %s) The optimal path for the map\n%swas %v, and cost %d\n",
		method, m, res.Path, res.Cost)
}
