package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timesheet-assistant/config"
	_ "timesheet-assistant/docs" // Swagger docs
	"timesheet-assistant/internal/app"
	"timesheet-assistant/internal/chat"
	chatHTTP "timesheet-assistant/internal/chat/delivery/http"
	tgDelivery "timesheet-assistant/internal/chat/delivery/telegram"
	"timesheet-assistant/internal/httpserver"
	"timesheet-assistant/internal/middleware"
	"timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/telegram"
)

// @title       Timesheet Assistant API
// @description Asistente conversacional para cargar y consultar horas.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Timesheet Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Core: parser, store, holidays, router, usecases, orchestrator
	core, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize core: ", err)
		return
	}
	defer core.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin)

	// 4. HTTP chat surface
	chatHandler := chatHTTP.New(
		logger,
		core.Orchestrator,
		core.Router,
		core.Report,
		chat.NewExportStore(cfg.Chat.ExportCacheSize, cfg.Chat.ExportTTL),
		core.Parser,
		chatHTTP.Config{UserID: cfg.Timesheet.UserID, UserName: cfg.Timesheet.UserName},
	)

	// 5. Telegram surface (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, core.Orchestrator, bot, core.Parser, limiter,
			tgDelivery.Config{UserID: cfg.Timesheet.UserID, UserName: cfg.Timesheet.UserName})

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimiter:     limiter,
		ChatHandler:     chatHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
