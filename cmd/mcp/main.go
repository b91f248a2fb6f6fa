package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/setup/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg, err := setup.LoadConfig()
	if err != nil {
		l := logger.NewConsole("info")
		l.Error().Err(err).Msg("Unable to load config")
		os.Exit(1)
	}

	// stdout carries the MCP protocol, logs go to stderr
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	l := logger.NewConsole(cfg.LogLevel)

	// Wire dependencies
	deps, err := setup.Wire(cfg, &l)
	if err != nil {
		l.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "validation-agent",
			Version: "1.0.0",
		}, nil,
	)
	mcpadapter.Register(server, deps.Validator)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes (e.g. echo | ./bin/validation-mcp)
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			l.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		l.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
