// Command lowestrisk reads a digit risk map and prints the lowest total risk
// of walking from the top-left to the bottom-right corner: first across the
// map as given, then across the map tiled -tiles times per axis with
// wraparound increments (pass -tiles 1 to skip the second answer).
//
// Answers go to stdout, one integer per line; progress and failures go to
// stderr as structured console logs. The process exits non-zero on any error.
//
// Usage:
//
//	lowestrisk -input cave.txt
//	cat cave.txt | lowestrisk -input - -tiles 1
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/riskgrid/astar"
	"github.com/katalvlaran/riskgrid/grid"
)

func main() {
	start := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	input := flag.String("input", "", `risk map file ("-" reads stdin)`)
	tiles := flag.Int("tiles", 5, "tile replication per axis for the second answer (1 disables it)")
	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("required flag -input not provided")
	}
	if *tiles < 1 {
		log.Fatal().Int("tiles", *tiles).Msg("-tiles must be at least 1")
	}

	var in io.Reader
	if *input == "-" {
		in = os.Stdin
		log.Info().Msg("Reading risk map from stdin")
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("file", *input).Msg("Failed to open risk map")
		}
		defer f.Close()
		in = f
		log.Info().Str("file", *input).Msg("Reading risk map")
	}

	base, err := grid.ParseDigits(in)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse risk map")
	}
	log.Info().
		Int("width", base.Width()).
		Int("height", base.Height()).
		Msg("Risk map parsed")

	fmt.Println(solve(base))

	if *tiles > 1 {
		full, err := base.Tile(*tiles, *tiles)
		if err != nil {
			log.Fatal().Err(err).Int("tiles", *tiles).Msg("Failed to expand risk map")
		}
		log.Info().
			Int("width", full.Width()).
			Int("height", full.Height()).
			Msg("Risk map expanded")

		fmt.Println(solve(full))
	}

	log.Info().Dur("duration", time.Since(start)).Msg("Done")
}

// solve runs the corner-to-corner search and logs its timing.
func solve(g *grid.Grid) int64 {
	searchStart := time.Now()
	cost, _, err := astar.AStar(g)
	if err != nil {
		log.Fatal().Err(err).Msg("Search failed")
	}
	log.Info().
		Int("width", g.Width()).
		Int("height", g.Height()).
		Int64("cost", cost).
		Dur("duration", time.Since(searchStart)).
		Msg("Lowest risk computed")

	return cost
}
