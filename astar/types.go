// Package astar defines configuration options and sentinel errors for the
// weighted-grid search.
//
// The search explores cells in order of accumulated cost plus an admissible
// heuristic, maintaining a min-heap frontier with lazy deletion of stale
// entries. See AStar in astar.go for the algorithm itself.
//
// Options:
//
//   - Origin:     starting cell; its own value is never charged and it is
//     never tested against Impassable (the walker already stands there).
//   - Goal:       target cell; the zero configuration resolves it to the
//     bottom-right corner of the grid at run time.
//   - ReturnPath: if true, return one optimal path origin..goal inclusive.
//   - MaxCost:    optional cap on accumulated cost; cells beyond are skipped.
//   - Impassable: cells with value ≥ this threshold are walls.
//   - OnVisit:    hook fired once per cell when its cost is finalized.
//
// Example usage:
//
//	cost, path, err := astar.AStar(
//	    g,
//	    astar.WithGoal(grid.Position{X: 9, Y: 9}),
//	    astar.WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("lowest risk %d via %d cells\n", cost, len(path))
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/riskgrid/grid"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to AStar.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOriginOutOfBounds indicates that the configured origin lies outside
	// the grid.
	ErrOriginOutOfBounds = errors.New("astar: origin lies outside the grid")

	// ErrGoalOutOfBounds indicates that the configured goal lies outside
	// the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal lies outside the grid")

	// ErrNegativeCost indicates that a negative cell cost was detected.
	// Best-first finalization is only sound for non-negative costs.
	ErrNegativeCost = errors.New("astar: negative cell cost encountered")

	// ErrUnreachable indicates that no path from origin to goal exists
	// within the configured MaxCost and Impassable limits.
	ErrUnreachable = errors.New("astar: goal is unreachable")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")

	// ErrBadImpassable indicates that Impassable was set to zero or negative,
	// which would turn every cell (including zero-cost cells) into a wall.
	ErrBadImpassable = errors.New("astar: Impassable must be positive")
)

// defaultGoal marks "resolve to the bottom-right corner"; AStar replaces it
// with the concrete corner of the grid it receives.
var defaultGoal = grid.Position{X: -1, Y: -1}

// Options configures the behavior of the search.
//
// Origin     – starting cell (must lie inside the grid).
// Goal       – target cell (must lie inside the grid once resolved).
// ReturnPath – if true, return one optimal path; otherwise path is nil.
// MaxCost    – accumulated costs beyond this cap are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Impassable – treat cells with value ≥ this threshold as walls.
//
//	Must be > 0. Default is math.MaxInt64 (no walls).
//
// OnVisit    – optional observer of (cell, finalized cost), in finalization
// order. Each cell is observed at most once, with its minimal cost.
type Options struct {
	Origin     grid.Position                     // Starting cell; entry cost never charged
	Goal       grid.Position                     // Target cell; defaultGoal resolves to bottom-right
	ReturnPath bool                              // Whether to reconstruct the optimal path
	MaxCost    int64                             // Maximum accumulated cost to explore
	Impassable int64                             // Cell value threshold treated as a wall
	OnVisit    func(p grid.Position, cost int64) // Finalization hook (nil to disable)
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// WithOrigin sets the starting cell. Default is (0,0), the top-left corner.
func WithOrigin(p grid.Position) Option {
	return func(o *Options) {
		o.Origin = p
	}
}

// WithGoal sets the target cell. Without it, the search targets the
// bottom-right corner of the grid.
func WithGoal(p grid.Position) Option {
	return func(o *Options) {
		o.Goal = p
	}
}

// WithReturnPath enables reconstruction of one optimal path in the result.
// If false (default), the returned path is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost sets a maximum accumulated-cost threshold.
// Cells whose lowest cost would exceed this value are not explored; a goal
// beyond it is reported unreachable.
// Must pass a non-negative value; negative values cause ErrBadMaxCost.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithImpassable defines a cell-value threshold at or above which cells are
// considered walls and never entered.
// Must pass a positive value; zero or negative cause ErrBadImpassable.
// Default (if not set) is math.MaxInt64 (no cells treated as walls).
func WithImpassable(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadImpassable.Error())
		}
		o.Impassable = threshold
	}
}

// WithOnVisit installs a hook observing every cell as its cost is finalized,
// including the origin (cost 0) and, when reached, the goal (always last).
// Each cell is observed at most once, with its minimal cost. Cells arrive in
// frontier-priority order, which coincides with cost order when the heuristic
// scale is zero (Dijkstra ordering). The hook receives plain values and must
// not retain the search's internals.
func WithOnVisit(fn func(p grid.Position, cost int64)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-options overrides.
//
// Defaults:
//   - Origin:     (0,0) (top-left corner).
//   - Goal:       bottom-right corner, resolved against the grid.
//   - ReturnPath: false (path not returned).
//   - MaxCost:    math.MaxInt64 (no cost cap).
//   - Impassable: math.MaxInt64 (no walls).
//   - OnVisit:    nil (no hook).
func DefaultOptions() Options {
	return Options{
		Origin:     grid.Position{X: 0, Y: 0},
		Goal:       defaultGoal,
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		Impassable: math.MaxInt64,
		OnVisit:    nil,
	}
}
