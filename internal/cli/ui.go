package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gridfit/pkg/placement"
)

// stdout is where command output goes. Tests replace it with a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleCellUsed   = lipgloss.NewStyle().Foreground(colorDim)
	styleCellNew    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleCellFree   = lipgloss.NewStyle().Foreground(colorDim)
	styleTableHead  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleTableCell  = lipgloss.NewStyle().Padding(0, 1)
	styleTableFirst = lipgloss.NewStyle().Padding(0, 1).Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"

	cellUsed = "██"
	cellNew  = "▓▓"
	cellFree = "··"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(stdout, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Fprintln(stdout)
}

// printBlock prints a multi-line block as is.
func printBlock(s string) {
	fmt.Fprintln(stdout, s)
}

// =============================================================================
// Grid Preview
// =============================================================================

// renderGrid draws the occupied cells of g and the proposed rect r, two
// characters per cell. Rows stop one below the lowest filled cell.
func renderGrid(g *placement.Grid, r placement.Rect) string {
	rows := max(g.Bottom(), r.Bottom()) + 1
	var b strings.Builder
	for y := range rows {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%3d ", y)))
		for x := range g.Columns() {
			switch {
			case x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom():
				b.WriteString(styleCellNew.Render(cellNew))
			case g.Occupied(x, y):
				b.WriteString(styleCellUsed.Render(cellUsed))
			default:
				b.WriteString(styleCellFree.Render(cellFree))
			}
		}
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// =============================================================================
// Candidate Table
// =============================================================================

// candidateTable renders the best position and its alternatives. The row at
// cursor is highlighted; pass -1 to highlight the first row.
func candidateTable(candidates []placement.Candidate, cursor int) string {
	if cursor < 0 {
		cursor = 0
	}
	rows := make([][]string, len(candidates))
	for i, c := range candidates {
		rank := strconv.Itoa(i + 1)
		if i == 0 {
			rank = "best"
		}
		rows[i] = []string{rank, strconv.Itoa(c.X), strconv.Itoa(c.Y), strconv.Itoa(c.Score)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "X", "Y", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleTableHead.Padding(0, 1)
			case row == cursor:
				return styleTableFirst
			}
			return styleTableCell
		}).
		Render()
}
