package doctor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/usefuulness/AirStatus/internal/ui"
)

// Render formats the report as a styled static listing under the given
// capability profile.
func (r *Report) Render(p ui.Profile) string {
	var b strings.Builder

	for _, c := range r.Checks {
		b.WriteString(fmt.Sprintf("  %s %-20s %s\n",
			marker(p, c.Status), c.Name, detail(p, c)))
	}

	b.WriteString("\n")
	if r.Healthy() {
		b.WriteString("  " + paint(p, ui.CheckPassStyle, "Host looks ready to scan.") + "\n")
	} else {
		b.WriteString("  " + paint(p, ui.CheckFailStyle, "Fix the failed checks before scanning.") + "\n")
	}
	return b.String()
}

func marker(p ui.Profile, s Status) string {
	if p.Unicode {
		switch s {
		case Pass:
			return paint(p, ui.CheckPassStyle, "✓")
		case Warn:
			return paint(p, ui.CheckWarnStyle, "!")
		default:
			return paint(p, ui.CheckFailStyle, "✗")
		}
	}
	switch s {
	case Pass:
		return paint(p, ui.CheckPassStyle, "+")
	case Warn:
		return paint(p, ui.CheckWarnStyle, "!")
	default:
		return paint(p, ui.CheckFailStyle, "x")
	}
}

func detail(p ui.Profile, c Check) string {
	switch c.Status {
	case Fail:
		return paint(p, ui.CheckFailStyle, c.Detail)
	case Warn:
		return paint(p, ui.CheckWarnStyle, c.Detail)
	default:
		return c.Detail
	}
}

func paint(p ui.Profile, st lipgloss.Style, s string) string {
	if !p.Color {
		return s
	}
	return st.Render(s)
}
