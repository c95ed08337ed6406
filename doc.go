// Package riskgrid answers one question fast: what is the cheapest walk
// across a rectangular grid of per-cell entry costs?
//
// 🚀 What is riskgrid?
//
//	A small, focused library for weighted-grid routing that brings together:
//		• Cost grids: immutable rectangular fields in a flat, cache-friendly buffer
//		• Digit-map parsing: one text line per row, one digit '1'–'9' per cell
//		• Tiling expansion: replicate a base pattern with 9→1 wraparound increments
//		• Lowest-cost search: A*-ordered best-first search with a min-heap frontier,
//		  lazy deletion of stale entries, and an admissible Manhattan-based heuristic
//
// ✨ Why choose riskgrid?
//
//   - Deterministic answers – one optimal cost, every run
//   - Rock-solid contracts – sentinel errors, validated inputs, in-code docs
//   - Tunable search – walls, cost caps, path reconstruction, visit hooks
//   - Pure algorithmic core – no goroutines, no globals, no hidden state
//
// Everything is organized under two subpackages plus one command:
//
//	grid/           — Grid, Position, ParseDigits and the Tile expander
//	astar/          — AStar lowest-total-cost search with functional options
//	cmd/lowestrisk/ — CLI: risk map file in, lowest risks on stdout
//
// Quick ASCII example:
//
//	1 1 6        walk ↓↓→→ pays 1+2+1+3 = 7:
//	1 3 8        the origin is free, every
//	2 1 3        entered cell charges its value.
//
// Dive into the package docs of grid and astar for contracts, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/riskgrid
package riskgrid
