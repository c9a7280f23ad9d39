package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revu-dev/revu/internal/adapters/inbound/cli"
	"github.com/revu-dev/revu/internal/adapters/inbound/httpapi"
	"github.com/revu-dev/revu/internal/application"
	"github.com/revu-dev/revu/internal/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReviewCommand_StdinJSON(t *testing.T) {
	out, err := runCLI(t, "var x = 1;\nconsole.log(x);", "review", "--json", "--delay", "0")
	require.NoError(t, err)

	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Issues)
	assert.Equal(t, "legacy declaration", res.Issues[0].Title)
	assert.Equal(t, domain.DefaultRulesChecked, res.Metadata.RulesChecked)
	assert.Equal(t, int64(0), res.Metadata.AnalysisTimeMs)
}

func TestReviewCommand_StdinText(t *testing.T) {
	out, err := runCLI(t, "if (a == b) { run(); }", "review", "--delay", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "loose equality")
	assert.Contains(t, out, "===")
}

func TestReviewCommand_Envelope(t *testing.T) {
	out, err := runCLI(t, "const total = 1;", "review", "--envelope", "--delay", "0")
	require.NoError(t, err)

	var env domain.ChatEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	res, err := env.Result()
	require.NoError(t, err)
	assert.Equal(t, len(res.Issues), res.Metadata.IssuesCount)
}

func TestReviewCommand_JSONAndEnvelopeExclusive(t *testing.T) {
	_, err := runCLI(t, "let a = 1;", "review", "--json", "--envelope", "--delay", "0")
	assert.Error(t, err)
}

func TestReviewCommand_EmptyStdin(t *testing.T) {
	out, err := runCLI(t, "", "review", "--json", "--delay", "0")
	require.NoError(t, err)

	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.IssueError, res.Issues[0].Type)
	require.NotNil(t, res.Issues[0].Line)
	assert.Equal(t, 1, *res.Issues[0].Line)
}

func TestReviewCommand_RejectsProse(t *testing.T) {
	_, err := runCLI(t, "hello there", "review", "--delay", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotCode))

	out, err := runCLI(t, "hello there", "review", "--json", "--force", "--delay", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "analysis complete")
}

func TestReviewCommand_FailOn(t *testing.T) {
	_, err := runCLI(t, "var x = 1;", "review", "--fail-on", "error", "--delay", "0")
	require.ErrorIs(t, err, cli.ErrReviewFailed)
	assert.Contains(t, err.Error(), "--fail-on error")

	_, err = runCLI(t, "console.log(1);", "review", "--fail-on", "error", "--delay", "0")
	assert.NoError(t, err)

	_, err = runCLI(t, "console.log(1);", "review", "--fail-on", "warning", "--delay", "0")
	assert.Error(t, err)

	_, err = runCLI(t, "let a = 1;", "review", "--fail-on", "sometimes", "--delay", "0")
	assert.Error(t, err)
}

func TestReviewCommand_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("var a = 1;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ts"), []byte("eval(input);"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("var x = 1;"), 0o644))

	out, err := runCLI(t, "", "review", dir, "--json", "--delay", "0")
	require.NoError(t, err)

	var reports []struct {
		File   string                `json:"file"`
		Result domain.AnalysisResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "a.js", filepath.Base(reports[0].File))
	assert.Equal(t, "b.ts", filepath.Base(reports[1].File))
	assert.Equal(t, "dynamic eval", reports[1].Result.Issues[0].Title)
}

func TestReviewCommand_Changed(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("element.innerHTML = html;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# readme"), 0o644))
	t.Chdir(dir)

	out, err := runCLI(t, "", "review", "--changed", "--json", "--delay", "0")
	require.NoError(t, err)

	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "unsafe HTML sink", res.Issues[0].Title)

	_, err = runCLI(t, "", "review", "--changed", "app.js", "--delay", "0")
	assert.Error(t, err)
}

func TestReviewCommand_ChangedOutsideRepo(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCLI(t, "", "review", "--changed", "--delay", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git repository")
}

func TestReviewCommand_AllFilesSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.js"), []byte("hello there"), 0o644))

	for _, flag := range []string{"--json", "--envelope"} {
		t.Run(flag, func(t *testing.T) {
			out, err := runCLI(t, "", "review", dir, flag, "--delay", "0")
			require.NoError(t, err)
			assert.Equal(t, "No files to review.\n", out)
			assert.NotContains(t, out, "null")
		})
	}
}

func TestReviewCommand_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "revu.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("delay_ms: 0\nrules_checked: 3\n"), 0o644))

	out, err := runCLI(t, "let a = 1;", "--config", cfgPath, "review", "--json")
	require.NoError(t, err)

	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Metadata.RulesChecked)

	_, err = runCLI(t, "let a = 1;", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "review")
	assert.Error(t, err)
}

func TestReviewCommand_BadLogLevel(t *testing.T) {
	_, err := runCLI(t, "let a = 1;", "--log-level", "loud", "review", "--delay", "0")
	assert.Error(t, err)
}

func TestReviewCommand_Remote(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.DelayMs = 0
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	srv := httptest.NewServer(httpapi.New(application.NewReviewService(cfg), cfg.Server, logrus.NewEntry(logger)).Handler())
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "for(;;) { tick(); }", "review", "--json", "--delay", "0", "--remote", srv.URL+"/v1")
	require.NoError(t, err)

	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "infinite loop", res.Issues[0].Title)
}
