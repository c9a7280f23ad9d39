package domain

import "time"

// IssueType classifies a finding.
type IssueType string

const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
	IssueSuccess IssueType = "success"
)

// Issue represents a single finding produced by a check.
type Issue struct {
	Type       IssueType `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Line       *int      `json:"line,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// HasLine reports whether the issue is scoped to a source line.
func (i Issue) HasLine() bool { return i.Line != nil }

// LineAt returns a pointer suitable for Issue.Line.
func LineAt(n int) *int { return &n }

// Metadata describes one analysis run.
type Metadata struct {
	Timestamp      string `json:"timestamp"`
	AnalysisTimeMs int64  `json:"analysisTimeMs"`
	IssuesCount    int    `json:"issuesCount"`
	RulesChecked   int    `json:"rulesChecked"`
}

// AnalysisResult is the aggregate returned for every review.
type AnalysisResult struct {
	Issues   []Issue  `json:"issues"`
	Metadata Metadata `json:"metadata"`
}

// TimestampLayout renders timestamps as ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp formats t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CountByType returns how many issues of each type the result holds.
func (r AnalysisResult) CountByType() map[IssueType]int {
	counts := make(map[IssueType]int, 3)
	for _, issue := range r.Issues {
		counts[issue.Type]++
	}
	return counts
}

// HasType reports whether any issue has the given type.
func (r AnalysisResult) HasType(t IssueType) bool {
	for _, issue := range r.Issues {
		if issue.Type == t {
			return true
		}
	}
	return false
}

// FailOn thresholds for CI usage.
const (
	FailOnError   = "error"
	FailOnWarning = "warning"
	FailOnNone    = "none"
)

// Fails reports whether the result trips the given fail-on threshold.
func (r AnalysisResult) Fails(threshold string) bool {
	switch threshold {
	case FailOnError:
		return r.HasType(IssueError)
	case FailOnWarning:
		return r.HasType(IssueError) || r.HasType(IssueWarning)
	default:
		return false
	}
}
