package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/revu-dev/revu/internal/adapters/outbound/config"
	"github.com/revu-dev/revu/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	logLevel   string
	configPath string

	loader domain.ConfigLoader
	detect domain.CodeDetector
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		loader: config.New(),
		detect: domain.LooksLikeCode,
	}
	cmd := &cobra.Command{
		Use:           "revu",
		Short:         "Review JavaScript and TypeScript snippets for common mistakes",
		Long:          "revu runs a fixed battery of style, structure and security checks over source code and reports the issues it finds.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides log_level)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the configuration file (default ./.revu.yaml)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newReviewCmd(opts))
	cmd.AddCommand(newChecksCmd())
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command. Cancelling ctx stops long-running
// subcommands such as serve.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
