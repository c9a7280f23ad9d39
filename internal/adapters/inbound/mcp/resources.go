package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/revu-dev/revu/internal/domain/rules"
)

const checksURI = "revu://checks"

func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			checksURI,
			"Check Catalog",
			mcplib.WithResourceDescription("Checks run by the reviewer, in execution order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleChecksResource,
	)
}

func handleChecksResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(rules.Catalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling checks: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      checksURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
