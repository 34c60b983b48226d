package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// Layout is a stored dashboard: a grid width and the widgets on it.
type Layout struct {
	Columns int      `json:"columns,omitempty"`
	Widgets []Widget `json:"widgets"`
}

// Widget is a dashboard entry. A nil Position means the widget has not been
// placed on the grid.
type Widget struct {
	ID       string          `json:"id"`
	Type     string          `json:"type,omitempty"`
	Title    string          `json:"title,omitempty"`
	Position *placement.Rect `json:"position,omitempty"`
}

// Occupants converts the layout's widgets for a placement search.
func (l *Layout) Occupants() []placement.Widget {
	out := make([]placement.Widget, len(l.Widgets))
	for i, w := range l.Widgets {
		out[i] = placement.Widget{ID: w.ID, Position: w.Position}
	}
	return out
}

// Positioned returns the number of widgets that have a position.
func (l *Layout) Positioned() int {
	n := 0
	for _, w := range l.Widgets {
		if w.Position != nil {
			n++
		}
	}
	return n
}

// AddWidget appends a widget of the given type at pos with a fresh ID and
// returns it.
func (l *Layout) AddWidget(widgetType string, pos placement.Rect) Widget {
	w := Widget{
		ID:       uuid.NewString(),
		Type:     widgetType,
		Position: &pos,
	}
	l.Widgets = append(l.Widgets, w)
	return w
}

// Bounds on layouts read from files or requests. The occupancy map holds one
// cell per column and row, so these cap its size.
const (
	MaxColumns = 256
	MaxRows    = 10000
)

// Validate checks that every position has non-negative coordinates, a size
// of at least one cell and lies within [MaxColumns] by [MaxRows].
func (l *Layout) Validate() error {
	if l.Columns < 0 || l.Columns > MaxColumns {
		return errors.New(errors.ErrCodeInvalidLayout, "columns must be between 0 and %d, got %d", MaxColumns, l.Columns)
	}
	for i, w := range l.Widgets {
		p := w.Position
		if p == nil {
			continue
		}
		if p.X < 0 || p.Y < 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "widget %d (%s): negative position %v", i, w.ID, *p)
		}
		if p.W < 1 || p.H < 1 {
			return errors.New(errors.ErrCodeInvalidLayout, "widget %d (%s): size must be at least 1x1, got %v", i, w.ID, *p)
		}
		if p.X > MaxColumns || p.W > MaxColumns || p.Right() > MaxColumns {
			return errors.New(errors.ErrCodeInvalidLayout, "widget %d (%s): extends past column %d, got %v", i, w.ID, MaxColumns, *p)
		}
		if p.Y > MaxRows || p.H > MaxRows || p.Bottom() > MaxRows {
			return errors.New(errors.ErrCodeInvalidLayout, "widget %d (%s): extends past row %d, got %v", i, w.ID, MaxRows, *p)
		}
	}
	return nil
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	if l.Widgets == nil {
		l.Widgets = []Widget{}
	}
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes and validates JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	return ReadLayout(bytes.NewReader(data))
}

// ReadLayout decodes and validates a Layout from r.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayout writes l to w as pretty-printed JSON.
func WriteLayout(l Layout, w io.Writer) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s", path)
	}
	if err != nil {
		return Layout{}, err
	}
	defer f.Close()
	return ReadLayout(f)
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
