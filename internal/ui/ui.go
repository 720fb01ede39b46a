package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Output receives status messages. Command headings go to the writer passed
// to Heading instead.
var Output io.Writer = os.Stderr

// Palette
var (
	colorPrimary = lipgloss.Color("#7C3AED") // violet

	colorSuccess = lipgloss.Color("#10B981") // emerald
	colorError   = lipgloss.Color("#EF4444") // red
	colorInfo    = lipgloss.Color("#3B82F6") // blue

	colorMuted  = lipgloss.Color("#6B7280") // gray-500
	colorSubtle = lipgloss.Color("#9CA3AF") // gray-400
	colorText   = lipgloss.Color("#F9FAFB") // gray-50
)

// Styles
var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)

	styleBold    = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorMuted)
	stylePrimary = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	styleLabel = lipgloss.NewStyle().Foreground(colorSubtle).Width(12)
	styleValue = lipgloss.NewStyle().Foreground(colorText)
)

// Icons
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
	iconGear    = "⚙️"
)

// Prefix functions return styled prefix strings.
func SuccessPrefix() string { return styleSuccess.Render(iconSuccess) }
func ErrorPrefix() string   { return styleError.Render(iconError) }

// Error prints an error message.
func Error(msg string, args ...any) {
	fmt.Fprintf(Output, "%s %s\n", ErrorPrefix(), fmt.Sprintf(msg, args...))
}

// Label prints a key-value pair with consistent formatting.
func Label(key, value string) {
	fmt.Fprintf(Output, "  %s %s\n",
		styleLabel.Render(key),
		styleValue.Render(value))
}

// Dim prints dimmed text.
func Dim(msg string, args ...any) {
	fmt.Fprintf(Output, "  %s\n", styleDim.Render(fmt.Sprintf(msg, args...)))
}

// Heading prints the line announcing a tool invocation, e.g.
//
//	🦀 Rust ⚙️ 'cargo build'
func Heading(w io.Writer, label, cmdline string) {
	fmt.Fprintf(w, "%s %s '%s'\n", stylePrimary.Render(label), iconGear, styleBold.Render(cmdline))
}

// Done prints the completion line for a tool invocation.
func Done(label string, duration time.Duration) {
	fmt.Fprintf(Output, "%s %s %s %s\n",
		SuccessPrefix(),
		label,
		styleDim.Render("finished in"),
		FormatDuration(duration))
}

// Detected prints the profile chosen for a directory.
func Detected(label, marker string) {
	fmt.Fprintf(Output, "%s %s %s\n",
		styleInfo.Render(iconArrow),
		stylePrimary.Render(label),
		styleDim.Render("("+marker+")"))
}

// Table renders a simple table.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{headers: headers, widths: widths}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for i, c := range cols {
		if i < len(t.widths) && lipgloss.Width(c) > t.widths[i] {
			t.widths[i] = lipgloss.Width(c)
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	fmt.Fprintf(w, "  %s\n", styleDim.Render(t.line(t.headers)))

	seps := make([]string, len(t.widths))
	for i, width := range t.widths {
		seps[i] = strings.Repeat("─", width)
	}
	fmt.Fprintf(w, "  %s\n", styleDim.Render(t.line(seps)))

	for _, row := range t.rows {
		fmt.Fprintf(w, "  %s\n", t.line(row))
	}
}

func (t *Table) line(cols []string) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(col)
		if i < len(t.widths) && i < len(cols)-1 {
			b.WriteString(strings.Repeat(" ", t.widths[i]-lipgloss.Width(col)))
		}
	}
	return b.String()
}

// FormatDuration formats duration as human readable string.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
