package rules

import (
	"strings"

	"github.com/fatih/camelcase"
	"github.com/revu-dev/revu/internal/domain"
)

// Phase groups checks by what they scan. Phases run in declaration order.
type Phase string

const (
	PhaseInput      Phase = "input"
	PhaseLine       Phase = "line"
	PhaseStructural Phase = "structural"
	PhaseSecurity   Phase = "security"
)

// Check is one independent heuristic. Exactly one of onLine/onText is set,
// except for the input check which the engine evaluates itself.
type Check struct {
	Name        string
	Phase       Phase
	Type        domain.IssueType
	Description string

	onLine func(c Check, line string, number int) (domain.Issue, bool)
	onText func(c Check, src *Source) []domain.Issue
}

// ID returns the kebab-case identifier derived from the CamelCase name.
func (c Check) ID() string {
	words := camelcase.Split(c.Name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// Title returns the human label of the check: lower-case words, acronyms kept.
func (c Check) Title() string {
	words := camelcase.Split(c.Name)
	for i, w := range words {
		if !isAcronym(w) {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}

func (c Check) issue(message string, line *int, suggestion string) domain.Issue {
	return domain.Issue{
		Type:       c.Type,
		Title:      c.Title(),
		Message:    message,
		Line:       line,
		Suggestion: suggestion,
	}
}

func isAcronym(w string) bool {
	return len(w) > 1 && strings.ToUpper(w) == w
}

// CheckInfo is the serializable description of a check.
type CheckInfo struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Phase       Phase            `json:"phase"`
	Type        domain.IssueType `json:"type"`
	Description string           `json:"description"`
}

// Info describes the check.
func (c Check) Info() CheckInfo {
	return CheckInfo{
		ID:          c.ID(),
		Title:       c.Title(),
		Phase:       c.Phase,
		Type:        c.Type,
		Description: c.Description,
	}
}

// Catalog lists every check in execution order, starting with the input check.
func Catalog() []CheckInfo {
	all := append([]Check{emptyInput}, Battery()...)
	infos := make([]CheckInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, c.Info())
	}
	return infos
}

// Battery returns the ordered checks run over non-blank input.
func Battery() []Check {
	return []Check{
		legacyDeclaration,
		looseEquality,
		debugOutput,
		missingTypeAnnotation,
		unusedVariable,
		danglingTry,
		infiniteLoop,
		dynamicEval,
		unsafeHTMLSink,
	}
}
