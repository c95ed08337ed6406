// Package grid provides the Grid container: a rectangular table of integer
// cell costs stored in a flat, row-major buffer. Grid is immutable once
// built; constructors deep-copy their input.
package grid

import "fmt"

// Grid is a rectangular field of per-cell traversal costs.
// Cells are stored in a single flat slice in row-major order
// (index = y*width + x) for cache friendliness; width and height define the
// dimensions. A Grid is immutable after construction.
type Grid struct {
	width, height int   // dimensions, both ≥ 1
	cells         []int // flat backing storage, length == width*height
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	// Deep copy row by row, validating rectangularity as we go.
	cells := make([]int, 0, w*h)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int {
	return g.height
}

// Len returns the total number of cells (Width×Height).
// Complexity: O(1).
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its flat row-major index: y*Width + x.
// The caller is responsible for bounds; pair with InBounds in traversals.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a flat row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// At returns the cost stored at (x,y). The caller is responsible for bounds;
// out-of-range coordinates panic via slice indexing.
// Complexity: O(1).
func (g *Grid) At(x, y int) int {
	return g.cells[y*g.width+x]
}

// AtIndex returns the cost stored at a flat row-major index.
// Complexity: O(1).
func (g *Grid) AtIndex(idx int) int {
	return g.cells[idx]
}

// Rows returns the cells as a freshly allocated [][]int in row order.
// Mutating the result never affects the Grid.
// Complexity: O(W×H) time and memory.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	var y int
	for y = 0; y < g.height; y++ {
		row := make([]int, g.width)
		copy(row, g.cells[y*g.width:(y+1)*g.width])
		rows[y] = row
	}

	return rows
}

// String implements fmt.Stringer for easy debugging: one "[a, b, c]" line
// per row.
// Complexity: O(W×H) for string construction.
func (g *Grid) String() string {
	var s string
	var x, y int
	for y = 0; y < g.height; y++ { // iterate over rows
		s += "["
		for x = 0; x < g.width; x++ { // iterate over columns
			s += fmt.Sprintf("%d", g.cells[y*g.width+x])
			if x < g.width-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
