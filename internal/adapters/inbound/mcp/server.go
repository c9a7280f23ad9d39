package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/revu-dev/revu/internal/application"
)

// Version is reported to MCP clients during initialization.
var Version = "0.1.0"

// NewRevuMCPServer creates an MCP server exposing the review tools and the
// check catalog resource.
func NewRevuMCPServer(svc *application.ReviewService) *server.MCPServer {
	s := server.NewMCPServer(
		"revu",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithRecovery(),
	)

	registerTools(s, svc)
	registerResources(s)

	return s
}
