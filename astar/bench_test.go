package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/riskgrid/astar"
	"github.com/katalvlaran/riskgrid/grid"
)

// randomRisks builds an n×n grid of risk values in [1,9] from a fixed seed.
func randomRisks(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = 1 + rng.Intn(9)
		}
		values[y] = row
	}
	g, err := grid.New(values)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	return g
}

// BenchmarkAStar measures the corner-to-corner search on a random 500×500
// risk grid.
// Complexity: O(W×H log(W×H))
func BenchmarkAStar(b *testing.B) {
	g := randomRisks(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := astar.AStar(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAStar_ReturnPath measures the same search with path
// reconstruction enabled.
// Complexity: O(W×H log(W×H)) plus O(path) for the walk-back.
func BenchmarkAStar_ReturnPath(b *testing.B) {
	g := randomRisks(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := astar.AStar(g, astar.WithReturnPath()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAStar_Tiled measures the full pipeline: a 100×100 base expanded
// (5,5) into 500×500, then searched corner to corner.
// Complexity: O(W×H×tileX×tileY) expansion + O(W'×H' log(W'×H')) search
func BenchmarkAStar_Tiled(b *testing.B) {
	base := randomRisks(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		full, err := base.Tile(5, 5)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err = astar.AStar(full); err != nil {
			b.Fatal(err)
		}
	}
}
