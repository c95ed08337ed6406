// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/riskgrid.
package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadDigit indicates a parsed cell that is not a digit '1'..'9'.
	ErrBadDigit = errors.New("grid: cell must be a digit between 1 and 9")

	// ErrTileFactor indicates a tiling factor below 1.
	ErrTileFactor = errors.New("grid: tile factors must be at least 1")

	// ErrRiskRange indicates a cell value outside [MinRisk, MaxRisk] where the
	// wraparound increment is defined.
	ErrRiskRange = errors.New("grid: cell value out of risk range [1,9]")
)

// Risk levels live in [MinRisk, MaxRisk]. Tiling increments wrap within this
// range: MaxRisk steps to MinRisk, never to zero.
const (
	// MinRisk is the lowest representable risk level.
	MinRisk = 1

	// MaxRisk is the highest representable risk level.
	MaxRisk = 9
)

// Position is a zero-based cell coordinate: X selects the column, Y the row.
// The origin (0,0) is the top-left cell.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)" for logs and test failures.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns the L1 distance between p and q:
// |p.X-q.X| + |p.Y-q.Y|.
// Complexity: O(1).
func (p Position) Manhattan(q Position) int {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

// AbsDiff returns the absolute difference |x-y| for any signed integer type.
// Complexity: O(1).
func AbsDiff[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}

	return y - x
}
