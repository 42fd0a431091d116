package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"replypilot/config"
	_ "replypilot/docs" // Swagger docs
	"replypilot/internal/httpserver"
	"replypilot/internal/model"
	replyHTTP "replypilot/internal/reply/delivery/http"
	"replypilot/internal/reply/usecase"
	"replypilot/internal/usage"
	"replypilot/pkg/llmprovider"
	"replypilot/pkg/log"
)

// @title       ReplyPilot API
// @description AI-assisted reply suggestions for marketplace customer reviews.
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

	logger.Info(ctx, "Starting ReplyPilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	engine := llmprovider.NewEngine(providers, llmprovider.DefaultRoutes(), logger)

	providerStatus := make(map[string]bool)
	for _, name := range []string{"groq", "gemini", "openai"} {
		providerStatus[name] = engine.Configured(name)
		logger.Infof(ctx, "Provider %s configured: %v", name, providerStatus[name])
	}

	// 4. Reply domain
	tracker := usage.New(cfg.RateLimit.RequestsPerMin)
	replyUC := usecase.New(logger, engine, tracker)
	replyHandler := replyHTTP.New(logger, replyUC, tracker)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    model.Environment(cfg.Environment.Name),
		ReplyHandler:   replyHandler,
		ProviderStatus: providerStatus,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
