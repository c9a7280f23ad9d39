package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/revu-dev/revu/internal/domain/rules"
)

var sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

// RenderChecks renders the rule catalog grouped by phase.
func RenderChecks(checks []rules.CheckInfo) string {
	var b strings.Builder

	var phase rules.Phase
	for _, c := range checks {
		if c.Phase != phase {
			phase = c.Phase
			fmt.Fprintf(&b, "\n  %s\n", sectionHeaderStyle.Render(string(phase)))
		}
		fmt.Fprintf(&b, "    %s %s  %s\n",
			typeTag(c.Type),
			titleStyle.Render(padRight(c.ID, 26)),
			dimStyle.Render(c.Description),
		)
	}
	b.WriteString("\n")
	return b.String()
}
