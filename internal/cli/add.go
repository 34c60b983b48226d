package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// addCommand creates the add command, which places a widget and saves it.
func (c *CLI) addCommand() *cobra.Command {
	var (
		opts   placeOptions
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "add [layout.json]",
		Short: "Place a widget and write it into the layout",
		Long: `Place a widget at the best position and append it to the layout.

A missing layout file is created. Use --output to write the result
elsewhere and leave the input untouched.`,
		Example: `  gridfit add dashboard.json --type chart
  gridfit add dashboard.json --size 4x3 --title "Latency" -o next.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = args[0]
			}
			if err := errors.ValidateLayoutPath(output); err != nil {
				return err
			}

			job, err := c.prepare(args[0], opts, true)
			if err != nil {
				return err
			}
			res := c.place(cmd.Context(), job)

			w := addToLayout(job, res.Rect(job.Size), title)
			if err := dashboard.WriteLayoutFile(job.Layout, output); err != nil {
				return err
			}

			if res.Fallback {
				printWarning("No gap fits; appended below the layout")
			}
			printSuccess("Added %s at %s", widgetLabel(w), StyleNumber.Render(w.Position.String()))
			printFile(output)
			return nil
		},
	}

	opts.register(c, cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite the input)")
	cmd.Flags().StringVar(&title, "title", "", "widget title (default: catalog title for --type)")

	return cmd
}

// addToLayout appends a widget at pos to job's layout. The title falls back
// to the catalog title of the widget type. A layout without a column count
// records the grid width it was placed on.
func addToLayout(job *placementJob, pos placement.Rect, title string) dashboard.Widget {
	if job.Layout.Columns == 0 {
		job.Layout.Columns = job.Placer.Columns()
	}
	w := job.Layout.AddWidget(job.Type, pos)
	if title == "" {
		title = job.Title
	}
	if title != "" {
		w.Title = title
		job.Layout.Widgets[len(job.Layout.Widgets)-1].Title = title
	}
	return w
}

// widgetLabel names a widget for status output.
func widgetLabel(w dashboard.Widget) string {
	switch {
	case w.Title != "":
		return w.Title
	case w.Type != "":
		return w.Type
	}
	return "widget"
}
