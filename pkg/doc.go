// Package pkg provides the core libraries for gridfit widget placement.
//
// # Overview
//
// gridfit proposes positions for new widgets on dashboards laid out on a
// fixed number of columns and an unbounded number of rows. It prefers
// filling gaps in existing rows over opening new ones, keeps widgets aligned
// with the columns above them and avoids leaving slivers one or two columns
// wide. The pkg directory is organized into these areas:
//
//  1. [placement] - The placement engine (occupancy map, candidates, scoring)
//  2. [dashboard] - Layout files and the widget catalog
//  3. [config] - TOML configuration for the CLI and API
//  4. [api] - HTTP placement API
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The data flow for one placement:
//
//	Layout file / API request
//	         ↓
//	    [dashboard] package (decode layout, resolve widget size)
//	         ↓
//	    [placement] package (occupancy map → candidates → scores)
//	         ↓
//	    best position + ranked alternatives
//
// # Quick Start
//
// Place a widget next to an existing one:
//
//	import "github.com/matzehuels/gridfit/pkg/placement"
//
//	widgets := []placement.Widget{
//	    {ID: "a", Position: &placement.Rect{X: 0, Y: 0, W: 6, H: 2}},
//	}
//	res := placement.FindBestPosition(widgets, placement.Size{W: 6, H: 2})
//	// res.X == 6, res.Y == 0
//
// Use a configured placer and a catalog type:
//
//	cfg, _ := config.Load(path)
//	def, _ := cfg.Catalog().Lookup("chart")
//	res := cfg.Placer().FindBestPositionFor(layout.Occupants(), def)
//
// # Main Packages
//
// [placement] - Builds an occupancy map from positioned widgets, enumerates
// every origin where the widget fits, scores each with position, adjacency,
// edge alignment and narrow-gap terms, and returns the best origin with up to
// four alternatives. When nothing fits it falls back to column 0 below all
// widgets. Placement is deterministic and never fails.
//
// [dashboard] - JSON layout files with widget IDs, types and titles, plus the
// catalog of widget types with default and bounding sizes.
//
// [config] - The TOML config file: grid width, search slack, scoring
// weights, server settings and the widget catalog.
//
// [api] - chi-based HTTP handlers for placements and the catalog.
//
// [observability] - Hooks for placement and HTTP request events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/placement/...      # Specific package
//	go test -run Example ./pkg/...   # Examples only
//
// [placement]: https://pkg.go.dev/github.com/matzehuels/gridfit/pkg/placement
// [dashboard]: https://pkg.go.dev/github.com/matzehuels/gridfit/pkg/dashboard
// [config]: https://pkg.go.dev/github.com/matzehuels/gridfit/pkg/config
// [api]: https://pkg.go.dev/github.com/matzehuels/gridfit/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridfit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridfit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gridfit/pkg/buildinfo
package pkg
