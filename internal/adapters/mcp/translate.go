package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wortkiste/internal/application/commands"
)

// TranslateFunc builds a translation command. Empty languages select the
// configured defaults.
type TranslateFunc func(text, source, target string) *commands.TranslateCommand

// RegisterTranslateTools adds the translate tool to the MCP server.
func RegisterTranslateTools(s *server.MCPServer, translate TranslateFunc) {
	s.AddTool(translateTool(), translateHandler(translate))
}

func translateTool() mcp.Tool {
	return mcp.NewTool("translate",
		mcp.WithDescription("Translate a word or short phrase. Returns {text, translation, source, target}."),
		mcp.WithString("text",
			mcp.Description("Text to translate"),
			mcp.Required(),
		),
		mcp.WithString("source",
			mcp.Description("Source language, e.g. de, or auto. Defaults to the configured source."),
		),
		mcp.WithString("target",
			mcp.Description("Target language, e.g. en. Defaults to the configured target."),
		),
	)
}

func translateHandler(translate TranslateFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := translate(
			req.GetString("text", ""),
			req.GetString("source", ""),
			req.GetString("target", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(result)
	}
}
