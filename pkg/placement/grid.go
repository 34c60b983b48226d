package placement

import "strings"

// Grid is an occupancy map: one boolean per cell, true when a widget covers it.
// Rows are indexed top to bottom, columns left to right.
type Grid struct {
	cells  [][]bool
	cols   int
	bottom int
}

// newGrid allocates an empty grid.
func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{cells: cells, cols: cols}
}

// Rows returns the number of rows in the map.
func (g *Grid) Rows() int { return len(g.cells) }

// Columns returns the number of columns in the map.
func (g *Grid) Columns() int { return g.cols }

// Bottom returns the first row below every positioned widget, or 0 when no
// widget has a position.
func (g *Grid) Bottom() int { return g.bottom }

// Occupied reports whether the cell at column x, row y is covered.
// Cells outside the map are free.
func (g *Grid) Occupied(x, y int) bool {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= g.cols {
		return false
	}
	return g.cells[y][x]
}

// CanPlaceAt reports whether a w×h rectangle at (x, y) lies inside the map
// and covers only free cells.
func (g *Grid) CanPlaceAt(x, y, w, h int) bool {
	if x < 0 || y < 0 || w < 1 || h < 1 || x+w > g.cols || y+h > len(g.cells) {
		return false
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if g.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// mark covers r, clipped to the map.
func (g *Grid) mark(r Rect) {
	for row := max(r.Y, 0); row < min(r.Bottom(), len(g.cells)); row++ {
		for col := max(r.X, 0); col < min(r.Right(), g.cols); col++ {
			g.cells[row][col] = true
		}
	}
}

// String renders the map one row per line, '#' for occupied and '.' for free.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, occupied := range row {
			if occupied {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// BuildOccupancyMap marks every positioned widget on a fresh grid. The grid
// is the lowest widget bottom plus the slack rows tall. Widgets without a
// position are skipped and parts of widgets outside the grid are clipped.
func (p *Placer) BuildOccupancyMap(widgets []Widget) *Grid {
	bottom := 0
	for _, w := range widgets {
		if w.Position != nil && w.Position.Bottom() > bottom {
			bottom = w.Position.Bottom()
		}
	}

	g := newGrid(bottom+p.opts.SlackRows, p.opts.Columns)
	g.bottom = bottom
	for _, w := range widgets {
		if w.Position != nil {
			g.mark(*w.Position)
		}
	}
	return g
}
