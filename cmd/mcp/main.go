package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timesheet-assistant/config"
	"timesheet-assistant/internal/app"
	"timesheet-assistant/internal/chat/delivery/mcp"
	"timesheet-assistant/pkg/log"
)

// main serves the assistant as MCP tools over stdio. Logs go to stderr
// because stdout carries the protocol.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		Output:   log.OutputStderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize core: ", err)
		os.Exit(1)
	}
	defer core.Close()

	s := mcp.NewServer(logger, core.Orchestrator, core.Report, core.Parser,
		mcp.Config{UserID: cfg.Timesheet.UserID, UserName: cfg.Timesheet.UserName})

	logger.Info(ctx, "MCP server listening on stdio")
	if err := mcp.Serve(s); err != nil {
		logger.Error(ctx, "MCP server stopped: ", err)
	}
}
