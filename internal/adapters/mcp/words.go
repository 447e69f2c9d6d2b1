package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wortkiste/internal/application/commands"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// AddWordFunc builds the command that saves a word. It decides whether a
// missing translation is looked up.
type AddWordFunc func(repo ports.WordRepository, original, translation, article string) *commands.AddWordCommand

// RegisterWordTools adds the flashcard tools to the MCP server. A nil add
// requires callers to pass a translation.
func RegisterWordTools(s *server.MCPServer, repo ports.WordRepository, add AddWordFunc) {
	s.AddTool(addWordTool(), addWordHandler(repo, add))
	s.AddTool(listWordsTool(), listWordsHandler(repo))
	s.AddTool(dueWordsTool(), dueWordsHandler(repo))
	s.AddTool(recordReviewTool(), recordReviewHandler(repo))
	s.AddTool(deleteWordTool(), deleteWordHandler(repo))
}

// --- add_word ---

func addWordTool() mcp.Tool {
	return mcp.NewTool("add_word",
		mcp.WithDescription("Save a word and its translation as a flashcard."),
		mcp.WithString("original",
			mcp.Description("Word in the language being learned"),
			mcp.Required(),
		),
		mcp.WithString("translation",
			mcp.Description("Translation of the word. Looked up when omitted and a translation server is configured."),
		),
		mcp.WithString("article",
			mcp.Description("Article, e.g. der, die, das"),
		),
	)
}

func addWordHandler(repo ports.WordRepository, add AddWordFunc) server.ToolHandlerFunc {
	if add == nil {
		add = commands.NewAddWordCommand
	}
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := add(repo,
			req.GetString("original", ""),
			req.GetString("translation", ""),
			req.GetString("article", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(result.Word)
	}
}

// --- list_words ---

func listWordsTool() mcp.Tool {
	return mcp.NewTool("list_words",
		mcp.WithDescription("List saved words, optionally filtered by a substring of the word or its translation."),
		mcp.WithString("query",
			mcp.Description("Filter text"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of words, 0 for all"),
		),
	)
}

func listWordsHandler(repo ports.WordRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListWordsCommand(repo, domain.WordFilter{
			Query: req.GetString("query", ""),
			Limit: req.GetInt("limit", 0),
		})
		words, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(nonNil(words))
	}
}

// --- due_words ---

func dueWordsTool() mcp.Tool {
	return mcp.NewTool("due_words",
		mcp.WithDescription("List words whose next review is due."),
		mcp.WithNumber("now",
			mcp.Description("Reference time in unix milliseconds (default: current time)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of words, 0 for all"),
		),
	)
}

func dueWordsHandler(repo ports.WordRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		now := time.Now()
		if ms := int64(req.GetFloat("now", 0)); ms > 0 {
			now = time.UnixMilli(ms)
		}
		words, err := commands.NewDueWordsCommand(repo, now, req.GetInt("limit", 0)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(nonNil(words))
	}
}

// --- record_review ---

func recordReviewTool() mcp.Tool {
	return mcp.NewTool("record_review",
		mcp.WithDescription("Store the outcome of a review. The caller computes the score and the next review time."),
		mcp.WithNumber("id",
			mcp.Description("Word ID"),
			mcp.Required(),
		),
		mcp.WithNumber("score",
			mcp.Description("New score"),
			mcp.Required(),
		),
		mcp.WithNumber("reviewed_at",
			mcp.Description("Review time in unix milliseconds (default: current time)"),
		),
		mcp.WithNumber("next_review_at",
			mcp.Description("Next review time in unix milliseconds"),
			mcp.Required(),
		),
	)
}

func recordReviewHandler(repo ports.WordRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reviewedAt := int64(req.GetFloat("reviewed_at", 0))
		if reviewedAt == 0 {
			reviewedAt = time.Now().UnixMilli()
		}

		cmd := commands.NewRecordReviewCommand(repo, int64(req.GetFloat("id", 0)), domain.Review{
			Score:        req.GetInt("score", 0),
			ReviewedAt:   reviewedAt,
			NextReviewAt: int64(req.GetFloat("next_review_at", 0)),
		})
		word, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(word)
	}
}

// --- delete_word ---

func deleteWordTool() mcp.Tool {
	return mcp.NewTool("delete_word",
		mcp.WithDescription("Delete a saved word by ID."),
		mcp.WithNumber("id",
			mcp.Description("Word ID"),
			mcp.Required(),
		),
	)
}

func deleteWordHandler(repo ports.WordRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteWordCommand(repo, int64(req.GetFloat("id", 0))).Execute(ctx)
		if err != nil {
			return toolError(fmt.Errorf("delete_word: %w", err))
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func nonNil(words []domain.Word) []domain.Word {
	if words == nil {
		return []domain.Word{}
	}
	return words
}
