// Package astar_test provides runnable examples for the weighted-grid
// search. Each example runs via "go test -run Example", showing both code
// and expected output.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/riskgrid/astar"
	"github.com/katalvlaran/riskgrid/grid"
)

// ExampleAStar finds the cheapest corner-to-corner walk across a small risk
// map. Stepping into a cell charges its value; the start cell is free.
// Complexity: O(W×H log(W×H)).
func ExampleAStar() {
	g, err := grid.ParseString("116\n138\n213\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The goal defaults to the bottom-right corner. The cheapest walk goes
	// down the left edge and along the bottom row: 1+2+1+3.
	cost, _, err := astar.AStar(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(cost)
	// Output: 7
}

// ExampleAStar_tiled answers the route question at both scales: across the
// 10×10 reference map, and across the same map expanded five tiles per axis
// with wraparound increments.
func ExampleAStar_tiled() {
	base, err := grid.ParseString(sampleMap)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	small, _, err := astar.AStar(base)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	full, err := base.Tile(5, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	large, _, err := astar.AStar(full)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("base=%d tiled=%d\n", small, large)
	// Output: base=40 tiled=315
}

// ExampleAStar_withReturnPath reconstructs the optimal route itself. The
// fixture admits exactly one cheapest walk, down and then right.
func ExampleAStar_withReturnPath() {
	g, err := grid.New([][]int{
		{1, 9, 9},
		{1, 9, 9},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cost, path, err := astar.AStar(g, astar.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(cost, path)
	// Output: 4 [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleAStar_withImpassable turns expensive cells into walls. Crossing the
// middle column directly costs 3; with cells of value ≥ 2 treated as walls,
// the route detours through the bottom row for 6.
func ExampleAStar_withImpassable() {
	g, err := grid.New([][]int{
		{1, 2, 1},
		{1, 2, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal := grid.Position{X: 2, Y: 0}

	direct, _, err := astar.AStar(g, astar.WithGoal(goal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	walled, _, err := astar.AStar(g, astar.WithGoal(goal), astar.WithImpassable(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("direct=%d walled=%d\n", direct, walled)
	// Output: direct=3 walled=6
}
