package placement

// FindAvailablePositions returns every origin where a w×h widget fits on g,
// scored, in scan order: top to bottom, then left to right. Sizes below 1 or
// wider than the grid yield no candidates.
func (p *Placer) FindAvailablePositions(g *Grid, w, h int) []Candidate {
	if w < 1 || h < 1 || w > g.Columns() {
		return nil
	}

	var out []Candidate
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x <= g.Columns()-w; x++ {
			if g.CanPlaceAt(x, y, w, h) {
				out = append(out, Candidate{X: x, Y: y, Score: p.ScorePosition(x, y, w, h, g)})
			}
		}
	}
	return out
}
