// Package astar implements best-first search for the lowest total entry cost
// between two cells of a grid.
//
// The search processes cells in order of accumulated cost plus an admissible
// heuristic (A* ordering), finalizing each cell the first time it leaves the
// frontier. With the heuristic scale at zero it degrades gracefully to plain
// Dijkstra ordering.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all cells (O(W×H)) to detect negative
//     costs and fail fast; the same scan finds the cheapest enterable cell,
//     which scales the Manhattan heuristic.
//   - We treat any cell with value ≥ Impassable as a wall.
//   - We stop exploring once the cheapest frontier cost exceeds MaxCost.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once their cell is finalized.
//   - We finish as soon as the goal is generated as a successor: every goal
//     neighbor shares one heuristic value and popped priorities never
//     decrease, so the first neighbor to finalize is the cheapest one, and
//     entering the goal charges the same value from any of them.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/riskgrid/grid"
)

// neighborOffsets enumerates the four orthogonal moves: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// AStar computes the minimum total cost of walking from Options.Origin to
// Options.Goal across g, where stepping into a cell charges that cell's
// value and the origin's own value is never charged. It accepts functional
// options to customize behavior (WithGoal, WithReturnPath, WithMaxCost,
// WithImpassable, WithOnVisit).
//
// Returns:
//
//   - cost: the minimal accumulated cost (0 when origin == goal).
//   - path: one optimal path origin..goal inclusive if WithReturnPath();
//     nil otherwise. Ties between equally cheap paths resolve arbitrarily.
//   - err:  a validation sentinel, or ErrUnreachable when no path exists
//     within the configured limits.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Origin must lie inside the grid (ErrOriginOutOfBounds).
//  3. Goal must lie inside the grid (ErrGoalOutOfBounds).
//  4. No cell may hold a negative cost (ErrNegativeCost).
//
// Complexity:
//
//   - Time:  O(W×H log(W×H))
//   - Space: O(W×H)
func AStar(g *grid.Grid, opts ...Option) (int64, []grid.Position, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return 0, nil, ErrNilGrid
	}

	// 3) Resolve the default goal to the bottom-right corner of this grid.
	if cfg.Goal == defaultGoal {
		cfg.Goal = grid.Position{X: g.Width() - 1, Y: g.Height() - 1}
	}

	// 4) Validate origin and goal lie inside the grid.
	if !g.InBounds(cfg.Origin.X, cfg.Origin.Y) {
		return 0, nil, fmt.Errorf("%w: origin %v, grid %dx%d", ErrOriginOutOfBounds, cfg.Origin, g.Width(), g.Height())
	}
	if !g.InBounds(cfg.Goal.X, cfg.Goal.Y) {
		return 0, nil, fmt.Errorf("%w: goal %v, grid %dx%d", ErrGoalOutOfBounds, cfg.Goal, g.Width(), g.Height())
	}

	// 5) Pre-scan all cells: fail fast on negative costs, and record the
	//    cheapest enterable cell value as the heuristic scale. Walls do not
	//    constrain the scale; they are never entered.
	minCost := math.MaxInt
	var idx, v int
	for idx = 0; idx < g.Len(); idx++ {
		v = g.AtIndex(idx)
		if v < 0 {
			x, y := g.Coordinate(idx)

			return 0, nil, fmt.Errorf("%w: cell (%d,%d) value=%d", ErrNegativeCost, x, y, v)
		}
		if int64(v) >= cfg.Impassable {
			continue
		}
		if v < minCost {
			minCost = v
		}
	}
	if minCost == math.MaxInt {
		minCost = 0 // every cell is a wall; the scale is never consulted
	}

	// 6) Origin and goal coincide: nothing is entered, nothing is charged.
	if cfg.Origin == cfg.Goal {
		if cfg.OnVisit != nil {
			cfg.OnVisit(cfg.Origin, 0)
		}
		if cfg.ReturnPath {
			return 0, []grid.Position{cfg.Origin}, nil
		}

		return 0, nil, nil
	}

	// 7) Prepare dense per-cell state and the frontier heap.
	r := &runner{
		g:       g,
		options: cfg,
		scale:   int64(minCost),
		goalIdx: g.Index(cfg.Goal.X, cfg.Goal.Y),
		visited: make([]bool, g.Len()),
		pq:      make(cellPQ, 0, g.Len()),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, g.Len())
		for idx = range r.prev {
			r.prev[idx] = -1 // no predecessor yet
		}
	}

	// 8) Seed the frontier with the origin and run the expansion loop.
	r.init()
	cost, err := r.process()
	if err != nil {
		return 0, nil, err
	}

	// 9) Reconstruct the path only when requested.
	if !cfg.ReturnPath {
		return cost, nil, nil
	}

	return cost, r.buildPath(), nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *grid.Grid // The cost field; read-only during the search.
	options Options    // Resolved configuration (Goal already concrete).
	scale   int64      // Heuristic multiplier: cheapest enterable cell value.
	goalIdx int        // Flat index of the goal cell.
	visited []bool     // visited[idx] is true once idx's cost is finalized.
	prev    []int      // Predecessor indices for path reconstruction; nil unless ReturnPath.
	pq      cellPQ     // Min-heap of frontier entries (lazy decrease-key).
}

// init pushes the origin onto the frontier at accumulated cost 0. Its
// priority is the pure heuristic estimate of the whole route.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{
		idx:      r.g.Index(r.options.Origin.X, r.options.Origin.Y),
		parent:   -1,
		cost:     0,
		priority: r.heuristic(r.options.Origin.X, r.options.Origin.Y),
	})
}

// process is the core loop: repeatedly extract the lowest-priority frontier
// entry, finalize its cell, and expand its orthogonal neighbors.
//
// Loop termination conditions:
//
//   - The goal is generated as a successor (its cost is final; return it).
//   - The heap empties: the goal is cut off by walls, the grid border, or
//     the MaxCost cap. Reports ErrUnreachable.
func (r *runner) process() (int64, error) {
	var item *cellItem
	var goalCost int64
	var done bool
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest cost+heuristic priority.
		item = heap.Pop(&r.pq).(*cellItem)

		// 2) Skip stale duplicates of already-finalized cells.
		if r.visited[item.idx] {
			continue
		}

		// 3) Finalize: the accumulated cost for this cell is now minimal.
		//    Entries beyond MaxCost never enter the heap, so every pop is
		//    within the cap.
		r.visited[item.idx] = true
		if r.prev != nil {
			r.prev[item.idx] = item.parent
		}
		if r.options.OnVisit != nil {
			x, y := r.g.Coordinate(item.idx)
			r.options.OnVisit(grid.Position{X: x, Y: y}, item.cost)
		}

		// 4) Expand successors; generating the goal ends the search.
		if goalCost, done = r.expand(item); done {
			return goalCost, nil
		}
	}

	return 0, ErrUnreachable
}

// expand pushes every in-bounds, unvisited, passable orthogonal neighbor of
// a freshly finalized cell onto the frontier. When a successor lands on the
// goal, expand reports the route cost immediately instead of pushing.
//
// Assumes item.cost is finalized before the call.
func (r *runner) expand(item *cellItem) (int64, bool) {
	x, y := r.g.Coordinate(item.idx)
	var d [2]int
	var nx, ny, nIdx, v int
	var newCost int64
	for _, d = range neighborOffsets {
		nx, ny = x+d[0], y+d[1]

		// Skip neighbors outside the grid.
		if !r.g.InBounds(nx, ny) {
			continue
		}
		nIdx = r.g.Index(nx, ny)

		// Skip cells whose cost is already finalized.
		if r.visited[nIdx] {
			continue
		}

		// Skip walls: cells at or above the Impassable threshold.
		v = r.g.AtIndex(nIdx)
		if int64(v) >= r.options.Impassable {
			continue
		}

		// Entering the neighbor charges its cell value.
		newCost = item.cost + int64(v)
		if newCost > r.options.MaxCost {
			continue
		}

		// First generation of the goal is already minimal; finish here.
		if nIdx == r.goalIdx {
			if r.prev != nil {
				r.prev[nIdx] = item.idx
			}
			if r.options.OnVisit != nil {
				r.options.OnVisit(grid.Position{X: nx, Y: ny}, newCost)
			}

			return newCost, true
		}

		// Push with cost+heuristic priority. Duplicates are allowed; stale
		// ones are discarded on pop once the cell is finalized.
		heap.Push(&r.pq, &cellItem{
			idx:      nIdx,
			parent:   item.idx,
			cost:     newCost,
			priority: newCost + r.heuristic(nx, ny),
		})
	}

	return 0, false
}

// heuristic returns an admissible lower bound on the remaining cost from
// (x,y) to the goal: the Manhattan distance times the cheapest enterable
// cell value. Every move enters exactly one cell, and no enterable cell is
// cheaper than the scale, so the estimate never overshoots; on grids holding
// zero-cost cells the scale collapses to 0 and the ordering is Dijkstra's.
func (r *runner) heuristic(x, y int) int64 {
	return r.scale * int64(grid.Position{X: x, Y: y}.Manhattan(r.options.Goal))
}

// buildPath walks predecessor indices back from the goal and reverses them
// into origin..goal order. Only called when ReturnPath is set, after the
// goal has been reached.
func (r *runner) buildPath() []grid.Position {
	// Collect flat indices goal→origin.
	idxs := make([]int, 0, 16)
	var at int
	for at = r.goalIdx; at != -1; at = r.prev[at] {
		idxs = append(idxs, at)
	}

	// Reverse into origin→goal positions.
	path := make([]grid.Position, len(idxs))
	var i, x, y int
	for i = range idxs {
		x, y = r.g.Coordinate(idxs[i])
		path[len(idxs)-1-i] = grid.Position{X: x, Y: y}
	}

	return path
}

// cellItem represents a frontier entry: a candidate route into a cell with
// its accumulated cost and heap priority (cost plus heuristic).
type cellItem struct {
	idx      int   // flat index of the cell
	parent   int   // flat index of the finalized cell that generated this entry (-1 for origin)
	cost     int64 // accumulated entry cost from the origin
	priority int64 // cost + heuristic; the heap key
}

// cellPQ is a min-heap (priority queue) of *cellItem, ordered by priority
// ascending. We use the "lazy-decrease-key" approach: cheaper routes into a
// cell push new entries, and outdated entries are ignored when popped
// (checked via visited[idx]).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority → popped first.
func (pq cellPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to *cellItem.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
