package scanner_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/revu-dev/revu/internal/adapters/outbound/scanner"
	"github.com/revu-dev/revu/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/app/src/index.js":              "var x = 1;",
		"/app/src/view.tsx":              "const v = 1;",
		"/app/src/README.md":             "# docs",
		"/app/node_modules/lib/index.js": "eval(x)",
		"/app/dist/bundle.js":            "eval(x)",
		"/app/scripts/build.mjs":         "console.log(1)",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestFileScanner_CollectWalksDirectories(t *testing.T) {
	s := scanner.NewWithFs(fixtureFs(t))

	files, err := s.Collect([]string{"/app"}, domain.DefaultExtensions)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.FromSlash("/app/src/index.js"),
		filepath.FromSlash("/app/src/view.tsx"),
		filepath.FromSlash("/app/scripts/build.mjs"),
	}, files)
}

func TestFileScanner_ExcludesVendoredDirs(t *testing.T) {
	s := scanner.NewWithFs(fixtureFs(t))

	files, err := s.Collect([]string{"/app"}, domain.DefaultExtensions)
	require.NoError(t, err)
	for _, f := range files {
		assert.NotContains(t, f, "node_modules")
		assert.NotContains(t, f, "dist")
	}
}

func TestFileScanner_ExplicitFileKeptRegardlessOfExtension(t *testing.T) {
	s := scanner.NewWithFs(fixtureFs(t))

	files, err := s.Collect([]string{"/app/src/README.md", "/app/src/README.md"}, domain.DefaultExtensions)
	require.NoError(t, err)
	assert.Equal(t, []string{"/app/src/README.md"}, files)
}

func TestFileScanner_CollectMissingPath(t *testing.T) {
	s := scanner.NewWithFs(afero.NewMemMapFs())
	_, err := s.Collect([]string{"/missing"}, domain.DefaultExtensions)
	assert.Error(t, err)
}

func TestFileScanner_ReadSourceCapsSize(t *testing.T) {
	fs := afero.NewMemMapFs()
	big := strings.Repeat("a", scanner.MaxSourceSize+10)
	require.NoError(t, afero.WriteFile(fs, "/big.js", []byte(big), 0o644))

	text, err := scanner.NewWithFs(fs).ReadSource("/big.js")
	require.NoError(t, err)
	assert.Len(t, text, scanner.MaxSourceSize)
}
