// Package grid expansion: Tile replicates a base risk pattern into a larger
// map with deterministic wraparound increments per tile copy.
package grid

import "fmt"

// wrap folds an incremented risk value back into [MinRisk, MaxRisk]:
// ((v-1) mod 9) + 1, so 9 steps to 1, never to 0. Defined for v ≥ 1.
func wrap(v int) int {
	return (v-MinRisk)%MaxRisk + MinRisk
}

// Tile returns a new Grid that replicates the base pattern tileX times
// horizontally and tileY times vertically. The copy at tile offset (i,j)
// adds i+j to every base value, wrapping within [1,9]:
//
//	out = ((v + i + j - 1) mod 9) + 1
//
// Horizontal and vertical increments compose additively, so the result is a
// single pass over the output; tiling (tileX,1) and then (1,tileY) produces
// the same grid. Tile(1,1) returns an identical copy of the base. The
// receiver is never modified.
//
// Returns ErrTileFactor when either factor is below 1, or ErrRiskRange when
// a base value lies outside [1,9], where the wraparound is undefined.
// Complexity: O(W×H×tileX×tileY) time and memory.
func (g *Grid) Tile(tileX, tileY int) (*Grid, error) {
	// 1) Validate tile factors.
	if tileX < 1 || tileY < 1 {
		return nil, fmt.Errorf("%w: got (%d,%d)", ErrTileFactor, tileX, tileY)
	}

	// 2) Validate every base value lies in the wraparound domain.
	var idx, v int
	for idx, v = range g.cells {
		if v < MinRisk || v > MaxRisk {
			x, y := g.Coordinate(idx)

			return nil, fmt.Errorf("%w: cell (%d,%d) value=%d", ErrRiskRange, x, y, v)
		}
	}

	// 3) Fill the output one tile row at a time. Each output cell is the
	//    base value plus the tile offsets, folded back into [1,9].
	w, h := g.width*tileX, g.height*tileY
	cells := make([]int, w*h)
	var x, y, tx, ty, outBase int
	for ty = 0; ty < tileY; ty++ {
		for y = 0; y < g.height; y++ {
			for tx = 0; tx < tileX; tx++ {
				outBase = (ty*g.height+y)*w + tx*g.width
				for x = 0; x < g.width; x++ {
					cells[outBase+x] = wrap(g.cells[y*g.width+x] + tx + ty)
				}
			}
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}
