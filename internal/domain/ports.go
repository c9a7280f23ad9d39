package domain

import "context"

// ConfigLoader reads project configuration from a directory or an explicit file.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
	LoadFile(path string) (Config, error)
}

// SourceScanner expands paths into reviewable files and loads their text.
type SourceScanner interface {
	Collect(paths []string, extensions []string) ([]string, error)
	ReadSource(path string) (string, error)
}

// ChangeLister lists files with uncommitted changes in a repository.
type ChangeLister interface {
	IsGitRepo(projectPath string) bool
	ChangedFiles(projectPath string) ([]string, error)
}

// Reviewer produces an AnalysisResult for a piece of source text.
// Implementations never fail on well-formed input; an error means the
// reviewer itself could not be reached.
type Reviewer interface {
	Review(ctx context.Context, source string) (*AnalysisResult, error)
}
