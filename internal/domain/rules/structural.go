package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/revu-dev/revu/internal/domain"
)

var (
	declaration  = regexp.MustCompile(`\b(?:let|const|var)\s+(\w+)\s*=`)
	tryBlock     = regexp.MustCompile(`\btry\s*\{[^}]*\}`)
	emptyForLoop = regexp.MustCompile(`\bfor\s*\(\s*;\s*;\s*\)`)
)

var unusedVariable = Check{
	Name:        "UnusedVariable",
	Phase:       PhaseStructural,
	Type:        domain.IssueWarning,
	Description: "variables that are declared but never referenced",
	onText: func(c Check, src *Source) []domain.Issue {
		var issues []domain.Issue
		usage := make(map[string]int)
		for _, m := range declaration.FindAllStringSubmatchIndex(src.Text, -1) {
			name := src.Text[m[2]:m[3]]
			n, ok := usage[name]
			if !ok {
				n = countWord(src.Text, name)
				usage[name] = n
			}
			if n > 1 {
				continue
			}
			issues = append(issues, c.issue(
				fmt.Sprintf("variable %q is declared but never used", name),
				src.LineAt(m[0]),
				"",
			))
		}
		return issues
	},
}

// countWord counts whole-word occurrences of name in text.
func countWord(text, name string) int {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return len(re.FindAllStringIndex(text, -1))
}

var danglingTry = Check{
	Name:        "DanglingTry",
	Phase:       PhaseStructural,
	Type:        domain.IssueError,
	Description: "try block is not followed by a catch clause",
	onText: func(c Check, src *Source) []domain.Issue {
		for _, loc := range tryBlock.FindAllStringIndex(src.Text, -1) {
			rest := strings.TrimLeftFunc(src.Text[loc[1]:], unicode.IsSpace)
			if !strings.HasPrefix(rest, "catch") {
				return []domain.Issue{c.issue(c.Description, src.LineAt(loc[0]), "")}
			}
		}
		return nil
	},
}

var infiniteLoop = Check{
	Name:        "InfiniteLoop",
	Phase:       PhaseStructural,
	Type:        domain.IssueError,
	Description: "for(;;) loop without a condition may never terminate",
	onText: func(c Check, src *Source) []domain.Issue {
		loc := emptyForLoop.FindStringIndex(src.Text)
		if loc == nil {
			return nil
		}
		return []domain.Issue{c.issue(c.Description, src.LineAt(loc[0]), "")}
	},
}
