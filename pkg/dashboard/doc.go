// Package dashboard provides serialization types for dashboard layouts and
// the widget catalog.
//
// It sits at the boundary between files or API payloads and
// [placement]. A [Layout] is what a dashboard stores: its column count and
// its widgets, each with an optional grid position. A [Catalog] maps widget
// types to [Definition]s that carry default, minimum and maximum sizes.
//
// # Layout Serialization
//
// Layouts use a small JSON format:
//
//	{
//	  "columns": 12,
//	  "widgets": [
//	    {"id": "w1", "type": "chart", "position": {"x": 0, "y": 0, "w": 6, "h": 2}},
//	    {"id": "w2", "type": "notes"}
//	  ]
//	}
//
// Common operations:
//
//	l, _ := dashboard.ReadLayoutFile("home.json")
//	res := placement.New(placement.WithColumns(l.Columns)).
//	    FindBestPosition(l.Occupants(), placement.Size{W: 4, H: 2})
//	w := l.AddWidget("chart", res.Rect(placement.Size{W: 4, H: 2}))
//	_ = dashboard.WriteLayoutFile(l, "home.json")
//
// # Sizes
//
// [ParseSize] reads "WxH" strings such as "6x4" from flags and query
// parameters. [Definition.Clamp] keeps a requested size within a widget
// type's bounds.
package dashboard
