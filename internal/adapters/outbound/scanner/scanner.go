package scanner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/revu-dev/revu/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
}

// MaxSourceSize caps how much of a single file is reviewed.
const MaxSourceSize = 1 << 20

// FileScanner implements domain.SourceScanner over an afero filesystem.
type FileScanner struct {
	fs afero.Fs
}

func New() *FileScanner {
	return NewWithFs(afero.NewOsFs())
}

func NewWithFs(fs afero.Fs) *FileScanner {
	return &FileScanner{fs: fs}
}

// Collect returns files to review. Explicit file paths are kept as given;
// directories are walked and filtered by extension.
func (s *FileScanner) Collect(paths []string, extensions []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := s.fs.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != root && skipDirs[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if domain.HasExtension(info.Name(), extensions) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}
	return files, nil
}

// ReadSource reads up to MaxSourceSize bytes of path.
func (s *FileScanner) ReadSource(path string) (string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxSourceSize))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
