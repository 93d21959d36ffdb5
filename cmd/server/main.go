package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ahstack/shopchat/internal/catalog"
	"github.com/ahstack/shopchat/internal/config"
	"github.com/ahstack/shopchat/internal/handler"
	"github.com/ahstack/shopchat/internal/llm"
	"github.com/ahstack/shopchat/internal/logger"
	"github.com/ahstack/shopchat/internal/middleware"
	"github.com/ahstack/shopchat/internal/service"
)

// main is the single entry-point for the REST API.
func main() {
	// Load configuration; missing provider credentials terminate here.
	cfg := config.Load()

	logg := logger.New(cfg.LogLevel, cfg.LogFormat)
	logg.Info("configuration loaded", map[string]interface{}{
		"catalog":  cfg.CatalogBaseURL,
		"provider": cfg.LLMProvider,
	})

	// Upstream clients. Both carry the same bounded timeout; past it a call
	// fails instead of hanging a request.
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.UpstreamTimeout)

	llmClient, err := newLLMClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	// Services.
	intentSvc := service.NewIntentService(llmClient, logg)
	responseSvc := service.NewResponseService(llmClient, logg)
	chatSvc := service.NewChatService(catalogClient, intentSvc, service.NewFactResolver(), responseSvc, logg)

	// Create Fiber app.
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	app.Use(middleware.Logging(logg))

	handler.RegisterRoutes(app, chatSvc, catalogClient)

	logg.Info("server starting", map[string]interface{}{"port": cfg.Port})
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func newLLMClient(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderVertex:
		return llm.NewVertexClient(context.Background(), cfg.ProjectID, cfg.Location)
	case config.ProviderDummy:
		return llm.NewDummy("<placeholder answer>"), nil
	default:
		return llm.NewGroqClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.UpstreamTimeout), nil
	}
}
