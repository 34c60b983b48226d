package dashboard

import (
	"slices"

	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// Definition describes a widget type from the catalog. Zero Min or Max
// dimensions mean unbounded.
type Definition struct {
	Type    string         `json:"type"`
	Title   string         `json:"title,omitempty"`
	Default placement.Size `json:"default"`
	Min     placement.Size `json:"min,omitzero"`
	Max     placement.Size `json:"max,omitzero"`
}

// DefaultSize implements [placement.Sizer].
func (d Definition) DefaultSize() placement.Size { return d.Default }

// Clamp keeps size within the definition's bounds.
func (d Definition) Clamp(size placement.Size) placement.Size {
	return placement.Size{
		W: clamp(size.W, d.Min.W, d.Max.W),
		H: clamp(size.H, d.Min.H, d.Max.H),
	}
}

func clamp(v, lo, hi int) int {
	if lo > 0 && v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}

// Validate checks the definition's type name and sizes.
func (d Definition) Validate() error {
	if err := errors.ValidateWidgetType(d.Type); err != nil {
		return err
	}
	if d.Default.W < 1 || d.Default.H < 1 {
		return errors.New(errors.ErrCodeInvalidSize, "widget %s: default size must be at least 1x1, got %v", d.Type, d.Default)
	}
	if (d.Max.W > 0 && d.Min.W > d.Max.W) || (d.Max.H > 0 && d.Min.H > d.Max.H) {
		return errors.New(errors.ErrCodeInvalidSize, "widget %s: min size %v exceeds max size %v", d.Type, d.Min, d.Max)
	}
	return nil
}

// Catalog maps widget types to their definitions.
type Catalog map[string]Definition

// Lookup returns the definition for widgetType.
func (c Catalog) Lookup(widgetType string) (Definition, error) {
	d, ok := c[widgetType]
	if !ok {
		return Definition{}, errors.New(errors.ErrCodeUnknownWidget, "unknown widget type %q", widgetType)
	}
	if d.Type == "" {
		d.Type = widgetType
	}
	return d, nil
}

// Types returns the catalog's widget types in sorted order.
func (c Catalog) Types() []string {
	types := make([]string, 0, len(c))
	for t := range c {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Definitions returns every definition sorted by type.
func (c Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c))
	for _, t := range c.Types() {
		d, _ := c.Lookup(t)
		out = append(out, d)
	}
	return out
}

// Validate checks every definition in the catalog.
func (c Catalog) Validate() error {
	for _, d := range c.Definitions() {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultCatalog returns a small built-in catalog used when no
// configuration defines widgets.
func DefaultCatalog() Catalog {
	return Catalog{
		"chart": {Type: "chart", Title: "Chart", Default: placement.Size{W: 6, H: 4}, Min: placement.Size{W: 3, H: 2}},
		"kpi":   {Type: "kpi", Title: "KPI", Default: placement.Size{W: 3, H: 2}, Max: placement.Size{W: 6, H: 2}},
		"table": {Type: "table", Title: "Table", Default: placement.Size{W: 12, H: 4}, Min: placement.Size{W: 6, H: 3}},
		"notes": {Type: "notes", Title: "Notes", Default: placement.Size{W: 4, H: 3}},
	}
}
