// Package placement finds where a new widget should go on a grid dashboard.
//
// # Overview
//
// A dashboard is a grid with a fixed number of columns and as many rows as
// its widgets need. Given the widgets already on the grid and the size of a
// new widget, this package proposes the best free origin for it plus a short
// ranked list of alternatives. It never moves existing widgets.
//
// The computation runs in three stages:
//
//  1. Occupancy: [Placer.BuildOccupancyMap] turns the widget list into a
//     [Grid] of occupied and free cells. The grid is as tall as the lowest
//     widget bottom plus a fixed number of slack rows.
//  2. Candidates: [Placer.FindAvailablePositions] scans every origin,
//     top-to-bottom then left-to-right, and keeps those where the widget fits.
//  3. Scoring: [Placer.ScorePosition] rates each candidate with additive
//     heuristics (see [Weights]) and the highest score wins.
//
// # Scoring
//
// Starting from [Weights.Base], a candidate loses points for every row and
// column away from the top-left corner, gains points for sitting directly
// below or right of an existing widget, gains points when its edges line up
// with the grid boundary or with widget edges above it, and loses points when
// it strands a free sliver one or two columns wide against another widget.
//
// # Fallback
//
// [Placer.FindBestPosition] always returns a position. When nothing fits, for
// example because the widget is wider than the grid, the result is column 0
// of the first row below every existing widget, with no alternatives and
// [Result.Fallback] set.
//
// # Usage
//
//	p := placement.New(placement.WithColumns(12))
//	res := p.FindBestPosition(widgets, placement.Size{W: 6, H: 2})
//	fmt.Println(res.X, res.Y)
//
// A [Placer] holds only configuration, so it is safe for concurrent use.
package placement
