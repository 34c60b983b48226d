package placement

// Defaults for a [Placer].
const (
	DefaultColumns      = 12
	DefaultSlackRows    = 10
	DefaultAlternatives = 4
)

// Weights are the additive scoring constants. Every term is independent, so
// changing one shifts only the candidates it applies to.
type Weights struct {
	Base              int `json:"base" toml:"base"`
	RowPenalty        int `json:"row_penalty" toml:"row_penalty"`
	ColumnPenalty     int `json:"column_penalty" toml:"column_penalty"`
	GapFillBonus      int `json:"gap_fill_bonus" toml:"gap_fill_bonus"`
	LeftEdgeBonus     int `json:"left_edge_bonus" toml:"left_edge_bonus"`
	RightEdgeBonus    int `json:"right_edge_bonus" toml:"right_edge_bonus"`
	AlignedEdgeBonus  int `json:"aligned_edge_bonus" toml:"aligned_edge_bonus"`
	NarrowGapPenalty1 int `json:"narrow_gap_penalty_1" toml:"narrow_gap_penalty_1"`
	NarrowGapPenalty2 int `json:"narrow_gap_penalty_2" toml:"narrow_gap_penalty_2"`
}

// DefaultWeights returns the stock heuristic weights.
func DefaultWeights() Weights {
	return Weights{
		Base:              10000,
		RowPenalty:        100,
		ColumnPenalty:     10,
		GapFillBonus:      500,
		LeftEdgeBonus:     50,
		RightEdgeBonus:    40,
		AlignedEdgeBonus:  30,
		NarrowGapPenalty1: 200,
		NarrowGapPenalty2: 100,
	}
}

// Options configures a [Placer].
type Options struct {
	Columns      int
	SlackRows    int
	Alternatives int
	Weights      Weights
}

// DefaultOptions returns a 12-column configuration with 10 slack rows,
// 4 alternatives and [DefaultWeights].
func DefaultOptions() Options {
	return Options{
		Columns:      DefaultColumns,
		SlackRows:    DefaultSlackRows,
		Alternatives: DefaultAlternatives,
		Weights:      DefaultWeights(),
	}
}

// Option modifies placer options.
type Option func(*Options)

// WithColumns sets the grid width. Values below 1 are ignored.
func WithColumns(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Columns = n
		}
	}
}

// WithSlackRows sets how many free rows are searched below the lowest widget.
// Negative values are ignored.
func WithSlackRows(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.SlackRows = n
		}
	}
}

// WithAlternatives sets how many runner-up candidates a result carries.
// Negative values are ignored.
func WithAlternatives(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Alternatives = n
		}
	}
}

// WithWeights replaces the scoring weights.
func WithWeights(w Weights) Option {
	return func(o *Options) { o.Weights = w }
}

// WithOptions replaces every setting at once, e.g. with values loaded from a
// config file. Invalid fields fall back to their defaults.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		WithColumns(opts.Columns)(o)
		WithSlackRows(opts.SlackRows)(o)
		WithAlternatives(opts.Alternatives)(o)
		o.Weights = opts.Weights
	}
}
