package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wortkiste/internal/domain"
)

// StatusFunc reports the state of the local installation
type StatusFunc func() (*domain.BackendStatus, error)

// RegisterStatusTool adds the status tool to the MCP server.
func RegisterStatusTool(s *server.MCPServer, status StatusFunc) {
	s.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report the data directory, the words database, the materialized dictionary languages, and whether downloads and translation are configured."),
		),
		statusHandler(status),
	)
}

func statusHandler(status StatusFunc) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		st, err := status()
		if err != nil {
			return toolError(err)
		}
		return jsonResult(st)
	}
}
