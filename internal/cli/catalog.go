package cli

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// catalogCommand creates the catalog command for listing widget types.
func (c *CLI) catalogCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "catalog [type]",
		Short: "List widget types and their sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := c.cfg.Catalog()
			defs := cat.Definitions()
			if len(args) == 1 {
				def, err := cat.Lookup(args[0])
				if err != nil {
					return err
				}
				defs = []dashboard.Definition{def}
			}

			if jsonOut {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(defs)
			}
			printBlock(catalogTable(defs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print definitions as JSON")

	return cmd
}

// catalogTable renders widget definitions as a table.
func catalogTable(defs []dashboard.Definition) string {
	rows := make([][]string, len(defs))
	for i, d := range defs {
		rows[i] = []string{d.Type, d.Title, d.Default.String(), sizeOrDash(d.Min), sizeOrDash(d.Max)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Title", "Default", "Min", "Max").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleTableHead.Padding(0, 1)
			case col == 0:
				return styleTableFirst
			}
			return styleTableCell
		}).
		Render()
}

// sizeOrDash formats a size bound, using "-" for an unset one. A bound with
// only one dimension set shows the other as "*".
func sizeOrDash(s placement.Size) string {
	switch {
	case s.W == 0 && s.H == 0:
		return "-"
	case s.W == 0:
		return "*x" + strconv.Itoa(s.H)
	case s.H == 0:
		return strconv.Itoa(s.W) + "x*"
	}
	return s.String()
}
