package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrissnell/diveprofile/internal/markers"
	"github.com/chrissnell/diveprofile/pkg/units"
)

var (
	colorRed    = lipgloss.Color("#FF5555")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorOrange = lipgloss.Color("#FFB86C")
	colorGray   = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

func iconStyle(i markers.Icon) lipgloss.Style {
	switch {
	case i == markers.Violation:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	case i == markers.Warning || i.IsICD():
		return lipgloss.NewStyle().Foreground(colorOrange)
	case i.IsGasChange():
		return lipgloss.NewStyle().Foreground(colorGreen)
	case i == markers.Info || i == markers.Bookmark:
		return lipgloss.NewStyle().Foreground(colorCyan)
	}
	return dimStyle
}

// Table writes a human-readable listing of the report.
func Table(w io.Writer, r Report, icons markers.IconSet, prefs units.Preferences) error {
	title := fmt.Sprintf("Dive #%d", r.Dive)
	if r.Location != "" {
		title += " " + r.Location
	}
	if r.Computer != "" {
		title += " (" + r.Computer + ")"
	}

	headers := []string{"TIME", "DEPTH", "ICON", "EVENT"}
	rows := make([][]string, 0, len(r.Markers))
	for _, m := range r.Markers {
		depth := "-"
		if m.DepthMM != nil {
			v, unit := prefs.Depth(*m.DepthMM)
			depth = fmt.Sprintf("%.1f%s", v, unit)
		}
		rows = append(rows, []string{
			formatTime(m.Time),
			depth,
			strings.TrimSpace(icons.Glyph(m.Icon) + " " + m.Icon.String()),
			strings.ReplaceAll(m.Tooltip, "\n", " / "),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = headerStyle.Render(pad(h, widths[i]))
	}
	b.WriteString(strings.Join(cells, "  ") + "\n")

	for i, row := range rows {
		m := r.Markers[i]
		style := lipgloss.NewStyle()
		if !m.Visible {
			style = dimStyle
		}
		for j, cell := range row {
			if j == 2 && m.Visible {
				cells[j] = iconStyle(m.Icon).Render(pad(cell, widths[j]))
			} else {
				cells[j] = style.Render(pad(cell, widths[j]))
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}

	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("no events to show") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func formatTime(sec int) string {
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
