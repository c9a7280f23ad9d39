package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/revu-dev/revu/internal/adapters/inbound/mcp"
	"github.com/revu-dev/revu/internal/application"
)

func newMCPCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the revu MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(root))
	return cmd
}

func newMCPServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start revu MCP server (stdio)",
		Long:  "Start the revu MCP server using stdio transport. This lets AI coding assistants review snippets and list the checks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			mcpadapter.Version = version
			s := mcpadapter.NewRevuMCPServer(application.NewReviewService(cfg))
			return server.ServeStdio(s)
		},
	}
}
