package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gravsim/internal/universe"
)

// Header renders the status line of a universe.
func Header(u *universe.Universe) string {
	status := StatusRunning.Render("RUNNING")
	if u.Paused() {
		status = StatusPaused.Render("PAUSED")
	}

	central := "-"
	if c := u.Central(); c != nil {
		central = c.Label()
	}

	fields := []string{
		Title.Render("gravsim"),
		status,
		field("mode", u.Mode().String()),
		field("time scale", fmt.Sprintf("%gx", u.TimeScale())),
		field("central", central),
		field("bodies", fmt.Sprintf("%d", u.Len())),
	}
	return strings.Join(fields, "  ")
}

// Report renders the universe report with each body label drawn in the
// body's own color.
func Report(u *universe.Universe) string {
	text := u.Report()
	for _, b := range u.Bodies() {
		label := fmt.Sprintf("%10s", b.Label())
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(b.Color().Hex()))
		text = strings.ReplaceAll(text, "\n"+label+" ", "\n"+style.Render(label)+" ")
	}
	return Header(u) + "\n" + Separator(72) + "\n" + text
}

// Metrics renders name/value pairs in the given order.
func Metrics(names []string, values map[string]float64) string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		v, ok := values[name]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			MetricLabel.Render(fmt.Sprintf("%-40s", name)),
			MetricValue.Render(fmt.Sprintf("%.6g", v))))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

func field(name, value string) string {
	return MetricLabel.Render(name+":") + " " + MetricValue.Render(value)
}
