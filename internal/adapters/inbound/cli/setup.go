package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/revu-dev/revu/internal/domain"
)

// loadConfig reads --config when given, otherwise ./.revu.yaml, and applies
// the --log-level override.
func loadConfig(opts *rootOptions) (domain.Config, error) {
	loader := opts.loader

	var (
		cfg domain.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = loader.LoadFile(opts.configPath)
	} else {
		cfg, err = loader.Load(".")
	}
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

// newLogger builds the entry every subcommand logs through. Logs go to
// stderr so that stdout stays machine readable.
func newLogger(cmd *cobra.Command, cfg domain.Config) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())

	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logger.SetLevel(lvl)

	return logrus.NewEntry(logger).WithFields(logrus.Fields{
		"program": "revu",
		"version": version,
	}), nil
}
