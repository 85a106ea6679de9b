package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"carrosusados/internal/config"
	"carrosusados/internal/handler"
	"carrosusados/internal/middleware"
	"carrosusados/internal/model"
	"carrosusados/internal/repository"
	"carrosusados/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Carros Usados Marketplace")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.PostgresDSN(),
		cfg.Postgres.MaxConnections,
		cfg.Postgres.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Initialize AI gateway client
	var aiClient service.ChatClient
	if cfg.AI.Enabled {
		aiClient = service.NewGatewayClient(&cfg.AI)
		log.Printf("✅ AI gateway client initialized")
		log.Printf("   - API Base: %s", cfg.AI.APIBase)
		log.Printf("   - Chat model: %s", cfg.AI.ChatModel)
		log.Printf("   - Embedding model: %s", cfg.AI.EmbeddingModel)
	} else {
		log.Println("⚠️  AI gateway is disabled - assistant and listing import will not work")
		log.Println("   Set AI_API_KEY environment variable to enable AI features")
	}

	// Initialize services
	carService := service.NewCarService(repo)
	extractor := service.NewFilterExtractor(aiClient, cfg.Assistant.ExtractMaxTokens)
	assistant := service.NewAssistant(aiClient, repo, extractor, &cfg.Assistant)
	fetcher := service.NewHTTPPageFetcher(&cfg.Import)
	importer := service.NewImporter(aiClient, fetcher, &cfg.Import)
	embeddings := service.NewEmbeddingService(repo, aiClient)

	log.Println("✅ Services initialized")

	// Initialize handlers
	carHandler := handler.NewCarHandler(carService)
	assistantHandler := handler.NewAssistantHandler(assistant)
	importHandler := handler.NewImportHandler(importer)
	favoriteHandler := handler.NewFavoriteHandler(carService)
	standHandler := handler.NewStandHandler(carService)
	adminHandler := handler.NewAdminHandler(carService, embeddings)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "carros-usados",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Public browse endpoints
		apiV1.GET("/vocab", carHandler.Vocab)
		apiV1.GET("/cars", carHandler.List)
		apiV1.GET("/cars/:id", carHandler.Get)
		apiV1.GET("/cars/:id/related", carHandler.Related)
		apiV1.GET("/slug/:slug", carHandler.GetBySlug)
		apiV1.GET("/stands/:id", standHandler.Get)

		// Conversational assistant
		apiV1.POST("/assistant", assistantHandler.Chat)
	}

	// Authenticated endpoints
	authed := apiV1.Group("")
	authed.Use(middleware.Auth(cfg.Auth.JWTSecret))
	{
		authed.POST("/cars", carHandler.Create)
		authed.PUT("/cars/:id", carHandler.Update)
		authed.DELETE("/cars/:id", carHandler.Delete)
		authed.POST("/cars/:id/sold", carHandler.MarkSold)

		authed.GET("/me/cars", carHandler.MyCars)
		authed.GET("/me/role", carHandler.MyRole)
		authed.GET("/me/favorites", favoriteHandler.ListIDs)
		authed.GET("/me/favorites/cars", favoriteHandler.ListCars)
		authed.POST("/favorites/:carID", favoriteHandler.Toggle)
		authed.GET("/me/stand", standHandler.Mine)
		authed.PUT("/me/stand", standHandler.Save)

		authed.POST("/import", importHandler.Import)
	}

	// Admin endpoints
	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRole(repo.GetUserRole, model.RoleAdmin))
	{
		admin.GET("/cars", adminHandler.AllCars)
		admin.GET("/cars/pending", adminHandler.Pending)
		admin.POST("/cars/:id/approve", adminHandler.Approve)
		admin.POST("/embeddings/batch", adminHandler.RefreshEmbeddings)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API base: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
