package rules

import (
	"strings"
	"time"

	"github.com/revu-dev/revu/internal/domain"
)

// emptyInput counts as a rule for rulesChecked but is evaluated by the
// caller before the battery runs.
var emptyInput = Check{
	Name:        "EmptyInput",
	Phase:       PhaseInput,
	Type:        domain.IssueError,
	Description: "no source code was provided for analysis",
}

// Options are the constants injected into an Engine.
type Options struct {
	// AnalysisTime is reported as metadata.analysisTimeMs.
	AnalysisTime time.Duration
	// RulesChecked is reported as metadata.rulesChecked.
	RulesChecked int
	// Now stamps metadata.timestamp. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions mirrors domain.DefaultConfig.
func DefaultOptions() Options {
	return Options{
		AnalysisTime: domain.DefaultDelay,
		RulesChecked: domain.DefaultRulesChecked,
	}
}

// Engine runs the ordered battery of checks.
type Engine struct {
	checks []Check
	opts   Options
}

// NewEngine creates an engine over Battery().
func NewEngine(opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{checks: Battery(), opts: opts}
}

// CheckInput returns the empty-input issue when text is blank.
func (e *Engine) CheckInput(text string) (domain.Issue, bool) {
	if strings.TrimSpace(text) != "" {
		return domain.Issue{}, false
	}
	return emptyInput.issue(emptyInput.Description, domain.LineAt(1), ""), true
}

// Analyze runs every check over text and returns the findings in detection
// order: per-line checks line by line, then structural, then security checks.
// The result is never nil and may be empty.
func (e *Engine) Analyze(text string) []domain.Issue {
	src := NewSource(text)
	issues := []domain.Issue{}

	for i, line := range src.Lines {
		if skipLine(line) {
			continue
		}
		for _, c := range e.checks {
			if c.onLine == nil {
				continue
			}
			if issue, ok := c.onLine(c, line, i+1); ok {
				issues = append(issues, issue)
			}
		}
	}

	for _, c := range e.checks {
		if c.onText != nil {
			issues = append(issues, c.onText(c, src)...)
		}
	}
	return issues
}

// Respond wraps issues with run metadata. issuesCount is len(issues) as given.
func (e *Engine) Respond(issues []domain.Issue) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Issues: issues,
		Metadata: domain.Metadata{
			Timestamp:      domain.FormatTimestamp(e.opts.Now()),
			AnalysisTimeMs: e.opts.AnalysisTime.Milliseconds(),
			IssuesCount:    len(issues),
			RulesChecked:   e.opts.RulesChecked,
		},
	}
}
