package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/revu-dev/revu/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Width(68)

	dimStyle        = lipgloss.NewStyle().Foreground(dim)
	faintStyle      = lipgloss.NewStyle().Foreground(faint)
	passStyle       = lipgloss.NewStyle().Foreground(success)
	errorTagStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle    = lipgloss.NewStyle().Foreground(warning).Bold(true)
	successTagStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	fileStyle       = lipgloss.NewStyle().Foreground(dim)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(fg)
	suggestStyle    = lipgloss.NewStyle().Foreground(success).Italic(true)
)

// RenderReview renders one AnalysisResult. name labels the reviewed source
// (a file path or "stdin").
func RenderReview(name string, result *domain.AnalysisResult) string {
	var b strings.Builder

	counts := result.CountByType()
	header := titleStyle.Render(shortenPath(name))
	var tags []string
	if n := counts[domain.IssueError]; n > 0 {
		tags = append(tags, errorTagStyle.Render(plural(n, "error")))
	}
	if n := counts[domain.IssueWarning]; n > 0 {
		tags = append(tags, warnTagStyle.Render(plural(n, "warning")))
	}
	if len(tags) == 0 {
		tags = append(tags, passStyle.Render("clean"))
	}
	meta := dimStyle.Render(fmt.Sprintf("%d rules checked · %dms · %s",
		result.Metadata.RulesChecked, result.Metadata.AnalysisTimeMs, result.Metadata.Timestamp))

	b.WriteString(boxStyle.Render(header + "  " + strings.Join(tags, "  ") + "\n" + meta))
	b.WriteString("\n\n")

	for _, issue := range result.Issues {
		renderIssue(&b, issue)
	}
	b.WriteString("\n")
	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	loc := "     "
	if issue.HasLine() {
		loc = fmt.Sprintf("L%-4d", *issue.Line)
	}
	fmt.Fprintf(b, "  %s %s %s\n", typeTag(issue.Type), fileStyle.Render(loc), titleStyle.Render(issue.Title))
	fmt.Fprintf(b, "               %s\n", dimStyle.Render(issue.Message))
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "               %s %s\n", faintStyle.Render("→"), suggestStyle.Render(strings.TrimSpace(issue.Suggestion)))
	}
}

func typeTag(t domain.IssueType) string {
	switch t {
	case domain.IssueError:
		return errorTagStyle.Render("error  ")
	case domain.IssueWarning:
		return warnTagStyle.Render("warning")
	default:
		return successTagStyle.Render("ok     ")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
