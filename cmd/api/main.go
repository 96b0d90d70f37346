package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/bible-companion-api/internal/agent"
	"github.com/bible-companion-api/internal/config"
	"github.com/bible-companion-api/internal/handlers"
	"github.com/bible-companion-api/internal/middleware"
	"github.com/bible-companion-api/internal/repository"
	"github.com/bible-companion-api/internal/repository/postgres"
	"github.com/bible-companion-api/internal/repository/vertex"
	"github.com/bible-companion-api/internal/services"
	"github.com/bible-companion-api/pkg/schema/db"
	pkgservices "github.com/bible-companion-api/pkg/schema/services"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())

	// Initialize PostgreSQL
	ctx := context.Background()
	if err := db.InitPostgres(ctx); err != nil {
		logger.Fatal("Failed to initialize PostgreSQL", zap.Error(err))
	}
	logger.Info("Database initialization complete")

	// Create repositories
	pgDB := db.GetPostgres()
	verseRepo := postgres.NewVerseRepository(pgDB)
	xrefRepo := postgres.NewCrossReferenceRepository(pgDB)
	emotionRepo := postgres.NewEmotionTagRepository(pgDB)

	// Create vector search repository based on configuration
	var vectorRepo repository.VectorSearchRepository
	var vertexRepo *vertex.VectorSearchRepository // For cleanup

	switch cfg.VectorBackend {
	case "vertex":
		logger.Info("Using Vertex AI Vector Search backend")
		vertexCfg := vertex.Config{
			ProjectID:            cfg.VertexProjectID,
			Location:             cfg.VertexLocation,
			IndexEndpointID:      cfg.VertexIndexEndpointID,
			DeployedIndexID:      cfg.VertexDeployedIndexID,
			PublicEndpointDomain: cfg.VertexPublicEndpointDomain,
		}
		var err error
		vertexRepo, err = vertex.NewVectorSearchRepository(ctx, vertexCfg, pgDB)
		if err != nil {
			logger.Fatal("Failed to create Vertex AI vector repository", zap.Error(err))
		}
		vectorRepo = vertexRepo
	default:
		logger.Info("Using pgvector backend")
		vectorRepo = postgres.NewVectorSearchRepository(pgDB)
	}

	// Create services
	embeddingsSvc := pkgservices.GetEmbeddingsService()
	if err := pkgservices.GetInitError(); err != nil {
		logger.Fatal("Failed to initialize embeddings service", zap.Error(err))
	}

	searchSvc := services.NewSearchService(vectorRepo, embeddingsSvc, cfg.SimilarityThreshold, cfg.SemanticSearchLimit)
	emotionSvc := services.NewEmotionService(emotionRepo, cfg.EmotionSearchLimit)
	referenceSvc := services.NewReferenceService(verseRepo)
	crossRefSvc := services.NewCrossRefService(xrefRepo, cfg.CrossRefLimit)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(api)

	searchHandler := handlers.NewSearchHandler(searchSvc)
	searchHandler.RegisterRoutes(api)

	verseHandler := handlers.NewVerseHandler(referenceSvc, crossRefSvc)
	verseHandler.RegisterRoutes(api)

	emotionHandler := handlers.NewEmotionHandler(emotionSvc)
	emotionHandler.RegisterRoutes(api)

	// Conversational agent
	if cfg.AgentEnabled {
		reasoner, err := agent.NewAnthropicReasoner(cfg.AgentModel, cfg.AnthropicAPIKey)
		if err != nil {
			logger.Fatal("Failed to create reasoner", zap.Error(err))
		}

		registry := agent.NewRegistry(agent.RegistryDeps{
			Search:    searchSvc,
			Reference: referenceSvc,
			CrossRefs: crossRefSvc,
		})

		runner, err := agent.NewRunner(agent.RunnerConfig{
			Reasoner:     reasoner,
			Registry:     registry,
			Memory:       agent.NewConversationStore(),
			SystemPrompt: agent.SystemPromptFor(cfg.AgentPersona, cfg.AgentSystemPrompt),
			MaxToolCalls: cfg.MaxToolCalls,
			Logger:       logger,
		})
		if err != nil {
			logger.Fatal("Failed to create agent runner", zap.Error(err))
		}

		chatHandler := handlers.NewChatHandler(runner, logger)
		chatHandler.RegisterRoutes(api)
	}

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("Starting server",
			zap.String("name", cfg.APITitle),
			zap.String("version", cfg.APIVersion),
			zap.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logger.Info("Server stopped", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", zap.Error(err))
	}

	if err := db.ClosePostgres(); err != nil {
		logger.Error("Error closing PostgreSQL", zap.Error(err))
	}

	// Close Vertex AI client if used
	if vertexRepo != nil {
		if err := vertexRepo.Close(); err != nil {
			logger.Error("Error closing Vertex AI client", zap.Error(err))
		}
	}

	logger.Info("Server stopped")
}
