package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridfit/pkg/observability"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// placeResult is the --json output of the place command.
type placeResult struct {
	Size     placement.Size   `json:"size"`
	Columns  int              `json:"columns"`
	Result   placement.Result `json:"result"`
	Position placement.Rect   `json:"position"`
}

// placeCommand creates the place command for proposing a widget position.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		opts    placeOptions
		jsonOut bool
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "place [layout.json]",
		Short: "Propose a position for a new widget",
		Long: `Propose a position for a new widget in a dashboard layout.

The best position is shown with up to four ranked alternatives. When no
position fits, the widget goes to column 0 below all existing widgets.`,
		Example: `  gridfit place dashboard.json --size 6x4
  gridfit place dashboard.json --type kpi --preview
  gridfit place dashboard.json --size 3x2 --columns 24 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.prepare(args[0], opts, false)
			if err != nil {
				return err
			}
			res := c.place(cmd.Context(), job)

			if jsonOut {
				return writePlaceJSON(job, res)
			}
			printPlacement(job, res, preview)
			return nil
		},
	}

	opts.register(c, cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "draw the grid with the proposed widget")

	return cmd
}

// place runs the search for job, logs it and reports it to the placement hooks.
func (c *CLI) place(ctx context.Context, job *placementJob) placement.Result {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	res := job.Placer.FindBestPosition(job.Layout.Occupants(), job.Size)

	prog.done(fmt.Sprintf("Placed %s widget among %d", job.Size, len(job.Layout.Widgets)))
	logger.Debug("placement", "x", res.X, "y", res.Y, "alternatives", len(res.Alternatives), "fallback", res.Fallback)

	observability.Placement().OnPlacement(ctx, observability.PlacementEvent{
		Source:       "cli",
		Width:        job.Size.W,
		Height:       job.Size.H,
		Widgets:      len(job.Layout.Widgets),
		Alternatives: len(res.Alternatives),
		X:            res.X,
		Y:            res.Y,
		Fallback:     res.Fallback,
		Duration:     prog.elapsed(),
	})
	return res
}

func writePlaceJSON(job *placementJob, res placement.Result) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(placeResult{
		Size:     job.Size,
		Columns:  job.Placer.Columns(),
		Result:   res,
		Position: res.Rect(job.Size),
	})
}

// printPlacement prints the chosen position, the ranking and optionally the
// grid preview.
func printPlacement(job *placementJob, res placement.Result, preview bool) {
	pos := res.Rect(job.Size)
	if res.Fallback {
		printWarning("No position fits a %s widget on %d columns", job.Size, job.Placer.Columns())
		printKeyValue("Fallback", StyleNumber.Render(pos.String()))
	} else {
		printSuccess("Best position for %s widget", job.Size)
		printKeyValue("Position", StyleNumber.Render(pos.String()))
		printNewline()
		printBlock(candidateTable(ranking(job, res), -1))
	}

	if preview {
		printNewline()
		printBlock(renderGrid(job.Placer.BuildOccupancyMap(job.Layout.Occupants()), pos))
	}
}

// ranking lists the best position followed by its alternatives.
func ranking(job *placementJob, res placement.Result) []placement.Candidate {
	g := job.Placer.BuildOccupancyMap(job.Layout.Occupants())
	best := placement.Candidate{
		X:     res.X,
		Y:     res.Y,
		Score: job.Placer.ScorePosition(res.X, res.Y, job.Size.W, job.Size.H, g),
	}
	return append([]placement.Candidate{best}, res.Alternatives...)
}
