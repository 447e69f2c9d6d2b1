package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wortkiste/internal/application"
	"wortkiste/internal/application/commands"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// FetchFunc builds a download command for a language. Commands built
// without a configured origin fail validation, which is reported to the
// caller.
type FetchFunc func(language string) *commands.FetchCommand

// RegisterDictionaryTools adds the dictionary tools to the MCP server.
func RegisterDictionaryTools(s *server.MCPServer, m *commands.Materializer, lookup ports.DictionaryLookup, fetch FetchFunc) {
	s.AddTool(ensureTool(), ensureHandler(m, fetch))
	s.AddTool(lookupTool(), lookupHandler(m, lookup))
}

// --- ensure_dictionary ---

func ensureTool() mcp.Tool {
	return mcp.NewTool("ensure_dictionary",
		mcp.WithDescription("Make sure the dictionary database for a language exists locally, decompressing a bundled or downloaded blob if needed. Returns {version, path, exists, logs}."),
		mcp.WithString("language",
			mcp.Description("Language identifier, e.g. de or fr"),
			mcp.Required(),
		),
		mcp.WithBoolean("download",
			mcp.Description("Download the blob when no local copy is found"),
		),
	)
}

func ensureHandler(m *commands.Materializer, fetch FetchFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		language := req.GetString("language", "")

		var (
			status *domain.DictionaryStatus
			err    error
		)
		if req.GetBool("download", false) && fetch != nil {
			status, err = commands.EnsureOrFetch(ctx, m, fetch(language))
		} else {
			status, err = m.Ensure(ctx, language)
		}
		if err != nil {
			return toolError(err)
		}
		return jsonResult(status)
	}
}

// --- lookup ---

func lookupTool() mcp.Tool {
	return mcp.NewTool("lookup",
		mcp.WithDescription("Look up words starting with a query in a language's dictionary."),
		mcp.WithString("language",
			mcp.Description("Language identifier, e.g. de"),
			mcp.Required(),
		),
		mcp.WithString("query",
			mcp.Description("Word or word prefix"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries (default 10)"),
		),
		mcp.WithString("format",
			mcp.Description("text (default) or json"),
			mcp.Enum("text", "json"),
		),
	)
}

func lookupHandler(m *commands.Materializer, lookup ports.DictionaryLookup) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewLookupCommand(m, lookup,
			req.GetString("language", ""),
			req.GetString("query", ""),
			req.GetInt("limit", 0),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if req.GetString("format", "text") == "json" {
			return jsonResult(result.Entries)
		}
		if len(result.Entries) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		var sb strings.Builder
		for _, e := range result.Entries {
			sb.WriteString(commands.FormatEntry(e))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

// toolError reports err to the client. Materialize failures carry their
// trace after the message.
func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(application.ErrorWithLogs(err)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Errorf("encoding result: %w", err))
	}
	return mcp.NewToolResultText(string(data)), nil
}
