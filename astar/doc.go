// Package astar computes the lowest total cost of a path across a grid of
// per-cell entry costs, using best-first search with an admissible
// Manhattan-based heuristic.
//
// What:
//
//   - AStar finds the cheapest orthogonal walk from an origin cell to a goal
//     cell. Stepping into a cell charges that cell's value; the origin's own
//     value is never charged.
//   - The frontier is a binary min-heap ordered by accumulated cost plus a
//     heuristic lower bound on the remaining cost. Duplicate frontier entries
//     are allowed and discarded lazily once a cell's cost is finalized.
//   - The heuristic is the Manhattan distance to the goal scaled by the
//     cheapest enterable cell value, so it stays admissible and consistent
//     for any grid of non-negative costs. On raw risk maps (values 1..9) the
//     scale is 1 and the bound is the plain Manhattan distance.
//   - The search finishes the moment the goal is generated as a successor:
//     entering the goal costs the same from every neighbor, all goal
//     neighbors share one heuristic value, and popped priorities never
//     decrease, so the first generation is already minimal.
//
// Why:
//
//   - Risk maps: cheapest route through a cave where each cell carries a
//     danger level.
//   - Tiled worlds: combined with grid.Tile for maps far larger than their
//     base pattern.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H))
//   - Each cell is finalized at most once: up to W×H pops.
//   - Each finalization pushes up to four successors (lazy decrease-key).
//   - Each heap operation costs O(log N), N ≤ 4×W×H.
//   - Space: O(W×H) for the visited array, predecessors and the heap.
//
// Options:
//
//   - WithOrigin(p):     starting cell (default (0,0)).
//   - WithGoal(p):       target cell (default bottom-right corner).
//   - WithReturnPath():  also reconstruct one optimal path, origin..goal.
//   - WithMaxCost(c):    do not explore accumulated costs beyond c.
//   - WithImpassable(t): treat cells with value ≥ t as walls.
//   - WithOnVisit(fn):   observe each cell as its cost is finalized.
//
// Errors (sentinel):
//
//   - ErrNilGrid           if the provided grid pointer is nil.
//   - ErrOriginOutOfBounds if the origin lies outside the grid.
//   - ErrGoalOutOfBounds   if the goal lies outside the grid.
//   - ErrNegativeCost      if any cell holds a negative cost.
//   - ErrUnreachable       if no path to the goal exists within the limits.
//   - ErrBadMaxCost        if MaxCost < 0.
//   - ErrBadImpassable     if Impassable <= 0.
package astar
