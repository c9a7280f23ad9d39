package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/revu-dev/revu/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".revu.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .revu.yaml.
type YAMLLoader struct {
	fs afero.Fs
}

// New creates a YAMLLoader over the OS filesystem.
func New() *YAMLLoader { return NewWithFs(afero.NewOsFs()) }

// NewWithFs creates a YAMLLoader over fs.
func NewWithFs(fs afero.Fs) *YAMLLoader { return &YAMLLoader{fs: fs} }

// Load reads .revu.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	cfg, err := l.LoadFile(filepath.Join(projectPath, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads an explicit configuration file. Keys absent from the file
// keep their default values.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

const header = "# revu configuration\n# delay_ms emulates review latency; rules_checked is reported in metadata.\n\n"

// Write stores cfg as projectPath/.revu.yaml and returns the written path.
// An existing file is only replaced when force is set.
func (l *YAMLLoader) Write(projectPath string, cfg domain.Config, force bool) (string, error) {
	dest := filepath.Join(projectPath, FileName)
	if !force {
		exists, err := afero.Exists(l.fs, dest)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", FileName, err)
		}
		if exists {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", FileName)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	if err := afero.WriteFile(l.fs, dest, append([]byte(header), data...), 0o644); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return dest, nil
}
