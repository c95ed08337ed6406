// Package grid_test provides runnable examples for grid construction,
// parsing and tiling. Each example runs via "go test -run Example".
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/riskgrid/grid"
)

// ExampleParseString parses a contiguous-digit risk map and reads a cell.
func ExampleParseString() {
	g, err := grid.ParseString("116\n138\n213\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%dx%d risk=%d\n", g.Width(), g.Height(), g.At(2, 1))
	// Output: 3x3 risk=8
}

// ExampleGrid_Tile replicates a single cell three times horizontally.
// The value 8 steps to 9 in the next copy, then wraps around to 1.
func ExampleGrid_Tile() {
	base, err := grid.New([][]int{{8}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := base.Tile(3, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(out)
	// Output: [8, 9, 1]
}

// ExamplePosition_Manhattan computes the L1 distance between two cells.
func ExamplePosition_Manhattan() {
	p := grid.Position{X: 1, Y: 2}
	q := grid.Position{X: 4, Y: 6}

	fmt.Println(p.Manhattan(q))
	// Output: 7
}
