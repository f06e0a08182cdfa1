package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"linear-memos-sync/config"
	_ "linear-memos-sync/docs" // Swagger docs
	"linear-memos-sync/internal/httpserver"
	memosRepo "linear-memos-sync/internal/project/repository/memos"
	"linear-memos-sync/internal/project/usecase"
	"linear-memos-sync/internal/render"
	"linear-memos-sync/internal/webhook"
	"linear-memos-sync/pkg/log"
)

// @title       Linear Memos Sync API
// @description Mirrors Linear projects and project updates into Memos via signed webhooks.
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

	logger.Info(ctx, "Starting Linear Memos Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Memos URL: %s", cfg.Memos.URL)

	if cfg.Webhook.Secret == "" && !cfg.Webhook.BypassValidation {
		logger.Warn(ctx, "No webhook secret configured: every webhook will be rejected (set webhook.secret or webhook.bypass_validation)")
	}
	if cfg.Webhook.BypassValidation {
		logger.Warn(ctx, "Signature validation is BYPASSED — do not run this in production")
	}

	// 3. Content repository (Memos)
	memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
	contentRepo := memosRepo.New(memosClient, cfg.Memos.ExternalURL, logger)

	// 4. Renderer and project usecase
	renderer := render.New(cfg.Template.Post, render.NewMarkdownFormatter(), nil)
	projectUC := usecase.New(logger, contentRepo, renderer, cfg.Memos.Visibility)

	// 5. Webhook handler
	webhookHandler := webhook.NewHandler(projectUC, webhook.SecurityConfig{
		Secret:           cfg.Webhook.Secret,
		BypassValidation: cfg.Webhook.BypassValidation,
		AllowedIPs:       cfg.Webhook.AllowedIPs,
		RateLimitPerMin:  cfg.Webhook.RateLimitPerMin,
	}, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
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
