package rules

import (
	"regexp"

	"github.com/revu-dev/revu/internal/domain"
)

var (
	evalCall        = regexp.MustCompile(`\beval\s*\(`)
	innerHTMLAssign = regexp.MustCompile(`\binnerHTML\s*\+?=(?:[^=]|$)`)
)

var dynamicEval = Check{
	Name:        "DynamicEval",
	Phase:       PhaseSecurity,
	Type:        domain.IssueError,
	Description: "avoid eval(): it executes arbitrary code",
	onText: func(c Check, src *Source) []domain.Issue {
		loc := evalCall.FindStringIndex(src.Text)
		if loc == nil {
			return nil
		}
		return []domain.Issue{c.issue(
			c.Description,
			src.LineAt(loc[0]),
			"// parse data with JSON.parse or dispatch through a lookup table instead of eval()",
		)}
	},
}

var unsafeHTMLSink = Check{
	Name:        "UnsafeHTMLSink",
	Phase:       PhaseSecurity,
	Type:        domain.IssueError,
	Description: "assigning to innerHTML enables XSS; use textContent",
	onText: func(c Check, src *Source) []domain.Issue {
		loc := innerHTMLAssign.FindStringIndex(src.Text)
		if loc == nil {
			return nil
		}
		return []domain.Issue{c.issue(
			c.Description,
			src.LineAt(loc[0]),
			"element.textContent = safeValue;",
		)}
	},
}
