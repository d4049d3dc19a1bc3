package physics

import "math"

// Grid is a uniform grid for broad-phase collision detection in a bounded
// field. Objects are inserted by position and index, then nearby objects
// are queried via a 3x3 neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within the
// neighborhood. Positions outside the field clamp to the edge cells.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int
}

// NewGrid creates a grid covering the given field dimensions. cellSize
// should be >= the maximum collision distance for the inserted objects.
func NewGrid(fieldW, fieldH, cellSize float64) *Grid {
	cols := int(math.Ceil(fieldW / cellSize))
	rows := int(math.Ceil(fieldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear removes all items without deallocating cell memory.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *Grid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given position. Cells beyond the field edge are skipped.
// If fn returns true, iteration stops early.
func (g *Grid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols

		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c] {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts field coordinates to grid cell coordinates, clamping
// to the valid range.
func (g *Grid) posToCell(x, y float64) (col, row int) {
	col = int(x * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(y * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
