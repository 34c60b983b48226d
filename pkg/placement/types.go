package placement

import "fmt"

// Rect is a rectangle in grid cells. X and Y are the top-left origin.
type Rect struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
	W int `json:"w" toml:"w"`
	H int `json:"h" toml:"h"`
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Right returns the first column right of the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// String returns the rectangle as "WxH@X,Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%d,%d", r.W, r.H, r.X, r.Y)
}

// Size is a widget size in grid cells.
type Size struct {
	W int `json:"w" toml:"w"`
	H int `json:"h" toml:"h"`
}

// String returns the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Widget is a widget already on the dashboard. Widgets without a Position
// do not occupy any cells.
type Widget struct {
	ID       string `json:"id,omitempty"`
	Position *Rect  `json:"position,omitempty"`
}

// Candidate is a feasible origin for the requested size and its score.
type Candidate struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Score int `json:"score"`
}

// Result is the outcome of a placement search.
type Result struct {
	X            int         `json:"x"`
	Y            int         `json:"y"`
	Alternatives []Candidate `json:"alternatives"`

	// Fallback is set when no origin fit and X, Y is the row below all widgets.
	Fallback bool `json:"fallback,omitempty"`
}

// Rect returns the result as a rectangle of the given size.
func (r Result) Rect(size Size) Rect {
	return Rect{X: r.X, Y: r.Y, W: size.W, H: size.H}
}

// Sizer supplies the default size of a widget kind. Catalog definitions
// implement it.
type Sizer interface {
	DefaultSize() Size
}
