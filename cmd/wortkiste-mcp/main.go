package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	mcpadapter "wortkiste/internal/adapters/mcp"
	"wortkiste/internal/app"
	"wortkiste/internal/config"
	"wortkiste/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("wortkiste-mcp: %v", err)
	}
	// logging goes to stderr, stdout carries the protocol
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("wortkiste-mcp: %v", err)
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatalf("wortkiste-mcp: %v", err)
	}
	defer a.Close()

	words, err := a.Words(context.Background())
	if err != nil {
		logger.Fatalf("wortkiste-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"wortkiste-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpadapter.RegisterStatusTool(mcpServer, a.Status)
	mcpadapter.RegisterDictionaryTools(mcpServer, a.Materializer, a.Lookup, a.FetchCommand)
	mcpadapter.RegisterTranslateTools(mcpServer, a.TranslateCommand)
	mcpadapter.RegisterWordTools(mcpServer, words, a.AddWordCommand)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Errorf("wortkiste-mcp: %v", err)
	}
}
