package placement

import "slices"

// Placer searches for widget positions on a grid with a fixed column count.
// It holds only configuration; every call builds its own occupancy map.
type Placer struct {
	opts Options
}

// New returns a placer with [DefaultOptions] modified by opts.
func New(opts ...Option) *Placer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Placer{opts: o}
}

// Options returns the placer's configuration.
func (p *Placer) Options() Options { return p.opts }

// Columns returns the grid width.
func (p *Placer) Columns() int { return p.opts.Columns }

// Rank returns every candidate for size sorted by descending score. Equal
// scores keep scan order, so the top-most, left-most origin comes first.
func (p *Placer) Rank(widgets []Widget, size Size) []Candidate {
	g := p.BuildOccupancyMap(widgets)
	return p.rank(g, size)
}

func (p *Placer) rank(g *Grid, size Size) []Candidate {
	candidates := p.FindAvailablePositions(g, size.W, size.H)
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return b.Score - a.Score
	})
	return candidates
}

// FindBestPosition returns the highest scoring origin for a widget of the
// given size, plus up to [Options.Alternatives] runners-up. When no origin
// fits, it returns column 0 of the first row below all widgets.
func (p *Placer) FindBestPosition(widgets []Widget, size Size) Result {
	g := p.BuildOccupancyMap(widgets)
	candidates := p.rank(g, size)

	if len(candidates) == 0 {
		return Result{X: 0, Y: g.Bottom(), Alternatives: []Candidate{}, Fallback: true}
	}

	best := candidates[0]
	rest := candidates[1:]
	if len(rest) > p.opts.Alternatives {
		rest = rest[:p.opts.Alternatives]
	}
	return Result{X: best.X, Y: best.Y, Alternatives: slices.Clone(rest)}
}

// FindBestPositionFor places a widget at the default size reported by def.
func (p *Placer) FindBestPositionFor(widgets []Widget, def Sizer) Result {
	return p.FindBestPosition(widgets, def.DefaultSize())
}

// FindBestPosition places a widget on a default 12-column grid.
func FindBestPosition(widgets []Widget, size Size) Result {
	return New().FindBestPosition(widgets, size)
}
