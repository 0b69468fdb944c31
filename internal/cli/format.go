package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/backupscope/internal/scope"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)

	includedColor = color.New(color.FgGreen)
	excludedColor = color.New(color.FgRed)
	partialColor  = color.New(color.FgYellow)
)

// stateColor returns the color used to render s.
func stateColor(s scope.State) *color.Color {
	switch s {
	case scope.Excluded:
		return excludedColor
	case scope.Partial:
		return partialColor
	default:
		return includedColor
	}
}

// PrintSection prints a section header
func PrintSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
	fmt.Fprintln(w)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// PrintError prints an error message with a cross
func PrintError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(w io.Writer, label, value string) {
	PrintLabelValueWithColor(w, label, value, valueColor)
}

// PrintLabelValueWithColor prints a label-value pair with a custom value color
func PrintLabelValueWithColor(w io.Writer, label, value string, valueClr *color.Color) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = valueClr.Fprintln(w, value)
}

// PrintList prints a list of items with bullet points
func PrintList(w io.Writer, items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Fprintf(w, "%s• %s\n", indentStr, item)
	}
}

// PrintStateTable prints one row per path with its colored state.
func PrintStateTable(w io.Writer, rows []stateRow) {
	if len(rows) == 0 {
		return
	}

	width := len("STATE")
	for _, row := range rows {
		if n := len(row.State.String()); n > width {
			width = n
		}
	}

	_, _ = headerColor.Fprintf(w, "  %-*s  %s\n", width, "STATE", "PATH")
	fmt.Fprintf(w, "  %s  %s\n", strings.Repeat("-", width), strings.Repeat("-", 4))
	for _, row := range rows {
		fmt.Fprint(w, "  ")
		_, _ = stateColor(row.State).Fprintf(w, "%-*s", width, row.State.String())
		fmt.Fprintf(w, "  %s\n", row.Path)
	}
}

// stateRow is one line of PrintStateTable.
type stateRow struct {
	Path  string
	State scope.State
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(w io.Writer, msg string) {
	_, _ = dimColor.Fprintf(w, "  %s\n", msg)
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
