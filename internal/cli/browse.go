package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// browseCommand creates the browse command for picking a candidate interactively.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		opts  placeOptions
		write bool
		title string
	)

	cmd := &cobra.Command{
		Use:   "browse [layout.json]",
		Short: "Step through ranked positions interactively",
		Long: `Step through the best position and its alternatives on a grid preview.

Press enter to pick the highlighted position. With --write the widget is
added to the layout file at that position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := c.prepare(args[0], opts, write)
			if err != nil {
				return err
			}
			res := c.place(cmd.Context(), job)

			grid := job.Placer.BuildOccupancyMap(job.Layout.Occupants())
			candidates := []placement.Candidate{{X: res.X, Y: res.Y}}
			if !res.Fallback {
				candidates = ranking(job, res)
			}

			final, err := tea.NewProgram(newBrowseModel(grid, job.Size, candidates, res.Fallback)).Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run browser")
			}
			m := final.(browseModel)
			if m.Chosen == nil {
				printInfo("Nothing picked")
				return nil
			}

			pos := placement.Rect{X: m.Chosen.X, Y: m.Chosen.Y, W: job.Size.W, H: job.Size.H}
			if !write {
				printSuccess("Picked %s", StyleNumber.Render(pos.String()))
				printNextStep("Add it with", fmt.Sprintf("gridfit add %s --size %s", args[0], job.Size))
				return nil
			}

			w := addToLayout(job, pos, title)
			if err := dashboard.WriteLayoutFile(job.Layout, args[0]); err != nil {
				return err
			}
			printSuccess("Added %s at %s", widgetLabel(w), StyleNumber.Render(pos.String()))
			printFile(args[0])
			return nil
		},
	}

	opts.register(c, cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, "add the picked widget to the layout file")
	cmd.Flags().StringVar(&title, "title", "", "widget title when writing")

	return cmd
}

// =============================================================================
// browseModel - Interactive candidate selection
// =============================================================================

// browseModel is the bubbletea model for stepping through candidates.
type browseModel struct {
	Grid       *placement.Grid
	Size       placement.Size
	Candidates []placement.Candidate
	Fallback   bool
	Cursor     int
	Chosen     *placement.Candidate
}

// newBrowseModel creates a model positioned on the best candidate.
func newBrowseModel(g *placement.Grid, size placement.Size, candidates []placement.Candidate, fallback bool) browseModel {
	return browseModel{
		Grid:       g,
		Size:       size,
		Candidates: candidates,
		Fallback:   fallback,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k", "left", "h", "shift+tab":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j", "right", "l", "tab":
		if m.Cursor < len(m.Candidates)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Candidates) > 0 {
			c := m.Candidates[m.Cursor]
			m.Chosen = &c
		}
		return m, tea.Quit
	}
	return m, nil
}

// current returns the rect of the highlighted candidate.
func (m browseModel) current() placement.Rect {
	c := m.Candidates[m.Cursor]
	return placement.Rect{X: c.X, Y: c.Y, W: m.Size.W, H: m.Size.H}
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Place %s widget", m.Size)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ cycle  ⏎ pick  q quit"))
	b.WriteString("\n\n")

	if len(m.Candidates) == 0 {
		return b.String()
	}

	b.WriteString(renderGrid(m.Grid, m.current()))
	b.WriteString("\n\n")

	if m.Fallback {
		b.WriteString(StyleWarning.Render("No position fits; showing the fallback below the layout"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(candidateTable(m.Candidates, m.Cursor))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Candidates))))
	return b.String()
}
