package placement

// ScorePosition rates a w×h widget at (x, y) on g. Higher is better. The
// score starts at the base weight and is adjusted additively:
//
//   - row and column distance from the top-left corner is penalized
//   - touching an occupied cell directly above or to the left earns the
//     gap-fill bonus
//   - each edge earns a bonus for touching the grid boundary, or failing
//     that, for lining up with a widget edge in the rows above
//   - a bounded strip of one or two columns between the right edge and
//     the grid edge is penalized
//
// ScorePosition does not check that the widget fits.
func (p *Placer) ScorePosition(x, y, w, h int, g *Grid) int {
	wt := p.opts.Weights
	score := wt.Base

	score -= y * wt.RowPenalty
	score -= x * wt.ColumnPenalty

	if touchesAbove(g, x, y, w) || touchesLeft(g, x, y, h) {
		score += wt.GapFillBonus
	}

	if x == 0 {
		score += wt.LeftEdgeBonus
	} else if alignedEdge(g, x, y) {
		score += wt.AlignedEdgeBonus
	}

	if x+w == g.Columns() {
		score += wt.RightEdgeBonus
	} else if alignedEdge(g, x+w, y) {
		score += wt.AlignedEdgeBonus
	}

	switch narrowGap(g, x+w, y, h) {
	case 1:
		score -= wt.NarrowGapPenalty1
	case 2:
		score -= wt.NarrowGapPenalty2
	}

	return score
}

// touchesAbove reports whether any cell in row y-1 over columns [x, x+w) is occupied.
func touchesAbove(g *Grid, x, y, w int) bool {
	if y == 0 {
		return false
	}
	for col := x; col < x+w; col++ {
		if g.Occupied(col, y-1) {
			return true
		}
	}
	return false
}

// touchesLeft reports whether any cell in column x-1 over rows [y, y+h) is occupied.
func touchesLeft(g *Grid, x, y, h int) bool {
	if x == 0 {
		return false
	}
	for row := y; row < y+h; row++ {
		if g.Occupied(x-1, row) {
			return true
		}
	}
	return false
}

// alignedEdge reports whether some row above y has an occupied run that
// starts exactly at column col.
func alignedEdge(g *Grid, col, y int) bool {
	if col <= 0 || col >= g.Columns() {
		return false
	}
	for row := 0; row < y; row++ {
		if g.Occupied(col, row) && !g.Occupied(col-1, row) {
			return true
		}
	}
	return false
}

// narrowGap returns the width of the strip [col, cols) to the right of a
// candidate when that strip is one or two columns wide and holds an occupied
// cell in rows [y, y+h). Wider strips and empty strips return 0.
func narrowGap(g *Grid, col, y, h int) int {
	gap := g.Columns() - col
	if gap < 1 || gap > 2 {
		return 0
	}
	for c := col; c < g.Columns(); c++ {
		for row := y; row < y+h; row++ {
			if g.Occupied(c, row) {
				return gap
			}
		}
	}
	return 0
}
