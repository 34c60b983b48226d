package placement

import "testing"

func rect(x, y, w, h int) *Rect { return &Rect{X: x, Y: y, W: w, H: h} }

func TestBuildOccupancyMapHeight(t *testing.T) {
	tests := []struct {
		name    string
		widgets []Widget
		rows    int
		bottom  int
	}{
		{name: "empty", rows: 10, bottom: 0},
		{name: "unpositioned only", widgets: []Widget{{ID: "a"}, {ID: "b"}}, rows: 10, bottom: 0},
		{name: "single", widgets: []Widget{{Position: rect(0, 0, 6, 2)}}, rows: 12, bottom: 2},
		{
			name:    "lowest bottom wins",
			widgets: []Widget{{Position: rect(0, 4, 3, 3)}, {Position: rect(3, 0, 3, 1)}},
			rows:    17,
			bottom:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New().BuildOccupancyMap(tt.widgets)
			if g.Rows() != tt.rows {
				t.Errorf("Rows() = %d, want %d", g.Rows(), tt.rows)
			}
			if g.Bottom() != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", g.Bottom(), tt.bottom)
			}
			if g.Columns() != DefaultColumns {
				t.Errorf("Columns() = %d, want %d", g.Columns(), DefaultColumns)
			}
		})
	}
}

func TestBuildOccupancyMapMarksCells(t *testing.T) {
	g := New().BuildOccupancyMap([]Widget{
		{Position: rect(2, 1, 3, 2)},
		{ID: "floating"},
	})

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			want := x >= 2 && x < 5 && y >= 1 && y < 3
			if got := g.Occupied(x, y); got != want {
				t.Errorf("Occupied(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBuildOccupancyMapClips(t *testing.T) {
	g := New().BuildOccupancyMap([]Widget{
		{Position: rect(10, 0, 5, 1)},
		{Position: rect(-2, 1, 3, 1)},
	})

	if !g.Occupied(10, 0) || !g.Occupied(11, 0) {
		t.Error("in-range part of clipped widget should be occupied")
	}
	if g.Occupied(9, 0) {
		t.Error("cell left of widget should be free")
	}
	if !g.Occupied(0, 1) {
		t.Error("widget with negative x should cover column 0")
	}
	if g.Occupied(1, 1) {
		t.Error("widget with negative x should end at column 0")
	}
}

func TestBuildOccupancyMapOverlappingInput(t *testing.T) {
	g := New().BuildOccupancyMap([]Widget{
		{Position: rect(0, 0, 4, 2)},
		{Position: rect(2, 0, 4, 2)},
	})
	for x := 0; x < 6; x++ {
		if !g.Occupied(x, 0) || !g.Occupied(x, 1) {
			t.Errorf("column %d should be occupied", x)
		}
	}
}

func TestGridOccupiedOutOfRange(t *testing.T) {
	g := New().BuildOccupancyMap(nil)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {12, 0}, {0, 10}} {
		if g.Occupied(c[0], c[1]) {
			t.Errorf("Occupied(%d, %d) outside the map should be false", c[0], c[1])
		}
	}
}

func TestCanPlaceAt(t *testing.T) {
	g := New().BuildOccupancyMap([]Widget{{Position: rect(0, 0, 6, 2)}})

	tests := []struct {
		name       string
		x, y, w, h int
		want       bool
	}{
		{name: "free half", x: 6, y: 0, w: 6, h: 2, want: true},
		{name: "overlaps widget", x: 5, y: 0, w: 2, h: 1, want: false},
		{name: "below widget", x: 0, y: 2, w: 12, h: 10, want: true},
		{name: "past right edge", x: 7, y: 0, w: 6, h: 1, want: false},
		{name: "past bottom", x: 0, y: 11, w: 1, h: 2, want: false},
		{name: "negative origin", x: -1, y: 0, w: 1, h: 1, want: false},
		{name: "zero width", x: 6, y: 0, w: 0, h: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CanPlaceAt(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("CanPlaceAt(%d, %d, %d, %d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestGridString(t *testing.T) {
	p := New(WithColumns(4), WithSlackRows(1))
	g := p.BuildOccupancyMap([]Widget{{Position: rect(1, 0, 2, 1)}})

	want := ".##.\n....\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	tests := []struct {
		b    Rect
		want bool
	}{
		{Rect{X: 1, Y: 1, W: 2, H: 2}, true},
		{Rect{X: 2, Y: 0, W: 2, H: 2}, false},
		{Rect{X: 0, Y: 2, W: 2, H: 2}, false},
		{Rect{X: 0, Y: 0, W: 1, H: 1}, true},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", a, tt.b, got, tt.want)
		}
	}
}
