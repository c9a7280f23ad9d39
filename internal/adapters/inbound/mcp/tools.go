package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/revu-dev/revu/internal/application"
	"github.com/revu-dev/revu/internal/domain/rules"
)

const (
	formatJSON     = "json"
	formatEnvelope = "envelope"
)

func registerTools(s *server.MCPServer, svc *application.ReviewService) {
	s.AddTool(
		mcplib.NewTool("revu_review",
			mcplib.WithDescription("Review a JavaScript/TypeScript snippet and return the issues found as JSON"),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Source code to review"),
			),
			mcplib.WithString("format",
				mcplib.Description("Output format: json (analysis result) or envelope (chat-completion response)"),
				mcplib.Enum(formatJSON, formatEnvelope),
			),
		),
		handleReview(svc),
	)

	s.AddTool(
		mcplib.NewTool("revu_list_checks",
			mcplib.WithDescription("List every check the reviewer runs, in execution order"),
		),
		handleListChecks(),
	)
}

func handleReview(svc *application.ReviewService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		raw, ok := args["code"]
		if !ok {
			return errorResult(`required argument "code" not found`), nil
		}
		code, ok := raw.(string)
		if !ok {
			return errorResult(`argument "code" must be a string`), nil
		}

		format, _ := args["format"].(string)
		switch format {
		case "", formatJSON:
			return jsonResult(svc.Review(ctx, code))
		case formatEnvelope:
			env, err := svc.Envelope(ctx, code)
			if err != nil {
				return errorResult(fmt.Sprintf("building envelope: %v", err)), nil
			}
			return jsonResult(env)
		default:
			return errorResult(fmt.Sprintf("unknown format %q (want json or envelope)", format)), nil
		}
	}
}

func handleListChecks() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(rules.Catalog())
	}
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
