package rules

import (
	"regexp"
	"strings"

	"github.com/revu-dev/revu/internal/domain"
)

var (
	varKeyword  = regexp.MustCompile(`\bvar\s`)
	debugCall   = regexp.MustCompile(`\bconsole\.(?:log|debug|info|warn|error|trace)\s*\(`)
	untypedDecl = regexp.MustCompile(`\b(let|const)\s+\w+\s*(?:=|[;)])`)
	declName    = regexp.MustCompile(`\b(let|const)\s+(\w+)`)
)

const (
	looseEq     = " == "
	looseEqNull = " == null"
	strictEq    = " === "
)

var legacyDeclaration = Check{
	Name:        "LegacyDeclaration",
	Phase:       PhaseLine,
	Type:        domain.IssueError,
	Description: "use const or let instead of var",
	onLine: func(c Check, line string, number int) (domain.Issue, bool) {
		loc := varKeyword.FindStringIndex(line)
		if loc == nil {
			return domain.Issue{}, false
		}
		fixed := line[:loc[0]] + "const" + line[loc[0]+len("var"):]
		return c.issue(c.Description, domain.LineAt(number), fixed), true
	},
}

var looseEquality = Check{
	Name:        "LooseEquality",
	Phase:       PhaseLine,
	Type:        domain.IssueWarning,
	Description: "prefer strict equality (===)",
	onLine: func(c Check, line string, number int) (domain.Issue, bool) {
		if !strings.Contains(line, looseEq) || strings.Contains(line, looseEqNull) {
			return domain.Issue{}, false
		}
		fixed := strings.Replace(line, looseEq, strictEq, 1)
		return c.issue(c.Description, domain.LineAt(number), fixed), true
	},
}

var debugOutput = Check{
	Name:        "DebugOutput",
	Phase:       PhaseLine,
	Type:        domain.IssueWarning,
	Description: "remove console output before committing",
	onLine: func(c Check, line string, number int) (domain.Issue, bool) {
		if !debugCall.MatchString(line) {
			return domain.Issue{}, false
		}
		return c.issue(c.Description, domain.LineAt(number), ""), true
	},
}

var missingTypeAnnotation = Check{
	Name:        "MissingTypeAnnotation",
	Phase:       PhaseLine,
	Type:        domain.IssueWarning,
	Description: "declare the variable's type",
	onLine: func(c Check, line string, number int) (domain.Issue, bool) {
		if !untypedDecl.MatchString(line) || strings.Contains(line, ":") {
			return domain.Issue{}, false
		}
		m := declName.FindStringSubmatchIndex(line)
		fixed := line[:m[0]] + line[m[2]:m[3]] + " " + line[m[4]:m[5]] + ": type" + line[m[1]:]
		return c.issue(c.Description, domain.LineAt(number), fixed), true
	},
}
