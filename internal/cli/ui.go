package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
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
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Layout Display
// =============================================================================

// printLayoutSummary prints the headline of a generation result.
func printLayoutSummary(res *pipeline.Result) {
	l := res.Layout
	printSuccess("Generated %s %s layout", StyleHighlight.Render(l.VibeID), l.Type)
	printStats(len(l.Elements), l.Score.Total, l.Metadata.Iterations, res.CacheHit)
	if l.Metadata.Fallback {
		printWarning("No valid candidate found, using the centered fallback")
	}
}

// printStats prints layout statistics on a single line.
func printStats(elements, score, iterations int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d elements", elements),
		fmt.Sprintf("score %d", score),
	}
	if iterations > 0 {
		parts = append(parts, fmt.Sprintf("%d iterations", iterations))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Println(line)
}

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

// scoreStyle colors a 0-100 score.
func scoreStyle(v float64) lipgloss.Style {
	switch {
	case v >= 80:
		return StyleSuccess
	case v >= 60:
		return StyleWarning
	default:
		return styleIconError
	}
}

// renderScore renders the per-principle breakdown as a table.
func renderScore(s layout.Score) string {
	b := s.Breakdown
	rows := [][]string{
		{"Hierarchy", fmtScore(b.Hierarchy)},
		{"Whitespace", fmtScore(b.Whitespace)},
		{"Alignment", fmtScore(b.Alignment)},
		{"Balance", fmtScore(b.Balance)},
		{"Proximity", fmtScore(b.Proximity)},
		{"Contrast", fmtScore(b.Contrast)},
		{"Rule of thirds", fmtScore(b.RuleOfThirds)},
		{"Vibe adherence", fmtScore(b.VibeAdherence)},
	}
	values := []float64{b.Hierarchy, b.Whitespace, b.Alignment, b.Balance,
		b.Proximity, b.Contrast, b.RuleOfThirds, b.VibeAdherence}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Principle", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case col == 1:
				return scoreStyle(values[row])
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

func fmtScore(v float64) string {
	return fmt.Sprintf("%5.1f", v)
}

// printScoreReport prints the total, the breakdown, issues and suggestions.
func printScoreReport(s layout.Score) {
	printKeyValue("Total", scoreStyle(float64(s.Total)).Render(fmt.Sprintf("%d/100", s.Total)))
	fmt.Println(renderScore(s))
	for _, issue := range s.Issues {
		printWarning("%s", issue)
	}
	for _, sug := range s.Suggestions {
		printInfo("%s", sug)
	}
}

// =============================================================================
// Vibe Display
// =============================================================================

// renderVibesTable renders the catalog as a table.
func renderVibesTable(vibes []vibe.Constraints) string {
	rows := make([][]string, 0, len(vibes))
	for _, v := range vibes {
		rows = append(rows, []string{
			v.ID,
			v.Name,
			fmt.Sprintf("%.0f%%", v.MinWhitespace),
			fmt.Sprintf("%d", v.MaxElements),
			string(v.Symmetry),
			string(v.Preferences.ElementDensity),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Whitespace", "Max", "Symmetry", "Density").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case col == 0:
				return StyleHighlight
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	return t.Render()
}

// printVibe prints every constraint of one vibe.
func printVibe(v vibe.Constraints) {
	fmt.Println(StyleTitle.Render(v.Name) + " " + StyleDim.Render("("+v.ID+")"))
	printKeyValue("Whitespace", fmt.Sprintf(">= %.0f%%", v.MinWhitespace))
	printKeyValue("Elements", fmt.Sprintf("<= %d", v.MaxElements))
	printKeyValue("Spacing", fmt.Sprintf("%.0fpx", v.MinElementSpacing))
	printKeyValue("Grid", fmt.Sprintf("%.0fpx", v.AlignmentGrid))
	printKeyValue("Symmetry", string(v.Symmetry))
	printKeyValue("Balance", fmt.Sprintf("%.2f", v.BalanceWeight))
	printKeyValue("Scale", joinFloats(v.ScaleRatios))
	printKeyValue("Golden", fmt.Sprintf("%t", v.UseGoldenRatio))
	printKeyValue("Thirds", fmt.Sprintf("%t", v.UseRuleOfThirds))
	printKeyValue("Columns", joinInts(v.Preferences.PreferredColumns))
	printKeyValue("Rows", joinInts(v.Preferences.PreferredRows))
	printKeyValue("Density", string(v.Preferences.ElementDensity))
	printKeyValue("Decorations", fmt.Sprintf("%t", v.Preferences.DecorativeElements))
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
