package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/revu-dev/revu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_LineOmittedWhenUnknown(t *testing.T) {
	data, err := json.Marshal(domain.Issue{Type: domain.IssueWarning, Title: "t", Message: "m"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"warning","title":"t","message":"m"}`, string(data))

	data, err = json.Marshal(domain.Issue{Type: domain.IssueError, Title: "t", Message: "m", Line: domain.LineAt(3), Suggestion: "s"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"error","title":"t","message":"m","line":3,"suggestion":"s"}`, string(data))
}

func TestIssue_HasLine(t *testing.T) {
	assert.False(t, domain.Issue{Title: "t"}.HasLine())
	assert.True(t, domain.Issue{Title: "t", Line: domain.LineAt(1)}.HasLine())
}

func TestMetadata_JSONNames(t *testing.T) {
	data, err := json.Marshal(domain.Metadata{Timestamp: "x", AnalysisTimeMs: 800, IssuesCount: 2, RulesChecked: 10})
	require.NoError(t, err)
	assert.JSONEq(t, `{"timestamp":"x","analysisTimeMs":800,"issuesCount":2,"rulesChecked":10}`, string(data))
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 5, 1, 14, 0, 0, 7_000_000, loc)
	assert.Equal(t, "2024-05-01T12:00:00.007Z", domain.FormatTimestamp(ts))
}

func TestAnalysisResult_CountByType(t *testing.T) {
	r := domain.AnalysisResult{Issues: []domain.Issue{
		{Type: domain.IssueError}, {Type: domain.IssueWarning}, {Type: domain.IssueWarning},
	}}
	counts := r.CountByType()
	assert.Equal(t, 1, counts[domain.IssueError])
	assert.Equal(t, 2, counts[domain.IssueWarning])
	assert.Equal(t, 0, counts[domain.IssueSuccess])
}

func TestAnalysisResult_Fails(t *testing.T) {
	warnOnly := domain.AnalysisResult{Issues: []domain.Issue{{Type: domain.IssueWarning}}}
	withError := domain.AnalysisResult{Issues: []domain.Issue{{Type: domain.IssueWarning}, {Type: domain.IssueError}}}
	clean := domain.AnalysisResult{Issues: []domain.Issue{{Type: domain.IssueSuccess}}}

	tests := []struct {
		name      string
		result    domain.AnalysisResult
		threshold string
		want      bool
	}{
		{"none never fails", withError, domain.FailOnNone, false},
		{"empty threshold never fails", withError, "", false},
		{"error threshold ignores warnings", warnOnly, domain.FailOnError, false},
		{"error threshold trips", withError, domain.FailOnError, true},
		{"warning threshold trips on warning", warnOnly, domain.FailOnWarning, true},
		{"warning threshold trips on error", withError, domain.FailOnWarning, true},
		{"success passes warning threshold", clean, domain.FailOnWarning, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Fails(tt.threshold))
		})
	}
}
