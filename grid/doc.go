// Package grid models a rectangular field of per-cell traversal costs and
// provides the deterministic tiling expansion that enlarges a base risk
// pattern into a bigger map.
//
// What:
//
//   - Grid wraps a rectangular cost table in a flat, row-major buffer
//     (index = y*Width + x) for cache-friendly scans.
//   - Position is a zero-based (X,Y) cell coordinate with Manhattan distance.
//   - ParseDigits reads the contiguous-digit text format: one row per line,
//     each cell a single digit '1'..'9', no separators.
//   - Tile replicates the base pattern tileX×tileY times; every copy adds its
//     tile offset to each cell with 9→1 wraparound, so values stay in [1,9].
//
// Why:
//
//   - Risk maps: cave or dungeon traversal where stepping into a cell charges
//     that cell's danger level.
//   - Terrain costs: movement penalties over procedurally tiled world chunks.
//
// Complexity:
//
//   - New / ParseDigits:                   O(W×H) time and memory.
//   - Tile:                                O(W×H×tileX×tileY) time and memory.
//   - At / Index / Coordinate / InBounds:  O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDigit: a parsed cell is not a digit '1'..'9'.
//   - ErrTileFactor: a tile factor is below 1.
//   - ErrRiskRange: a cell value lies outside [1,9] where wraparound needs it.
//
// See: the astar package for lowest-total-cost search over a Grid.
package grid
