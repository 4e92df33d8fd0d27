package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/ai-mock-interview/internal/config"
	"alfredoptarigan/ai-mock-interview/internal/handlers"
	"alfredoptarigan/ai-mock-interview/internal/repositories"
	"alfredoptarigan/ai-mock-interview/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	startupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Initialize user store
	userRepo, closeStore, err := initUserStore(startupCtx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s store: %v", cfg.Store.Driver, err)
	}

	if err := userRepo.EnsureSchema(startupCtx); err != nil {
		log.Fatalf("❌ Failed to ensure users schema: %v", err)
	}
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	tokenIssuer, err := services.NewTokenIssuer(cfg.JWT.SecretKey, cfg.JWT.Algorithm, cfg.TokenTTL(), time.Now)
	if err != nil {
		log.Fatalf("❌ Failed to initialize token issuer: %v", err)
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		startupCtx,
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.MaxOutputTokens,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized with model %s\n", cfg.Gemini.Model)

	authService := services.NewAuthService(userRepo, tokenIssuer, cfg.JWT.BcryptCost, time.Now)
	testService := services.NewTestService(geminiService)
	interviewService := services.NewInterviewService(geminiService)
	jobDescriptionService := services.NewJobDescriptionService(storageService, services.NewPDFParserService())
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	testHandler := handlers.NewTestHandler(testService)
	interviewHandler := handlers.NewInterviewHandler(interviewService, jobDescriptionService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Mock Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.SetupRoutes(app, authHandler, testHandler, interviewHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := closeStore(shutdownCtx); err != nil {
		log.Printf("❌ Failed to close %s store: %v", cfg.Store.Driver, err)
	}
	log.Println("✅ Server stopped")
}

func initUserStore(ctx context.Context, cfg *config.Config) (repositories.UserRepository, func(context.Context) error, error) {
	if cfg.Store.Driver == config.StorePostgres {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func(context.Context) error { return config.CloseDatabase(db) }
		return repositories.NewPostgresUserRepository(db), closeDB, nil
	}

	mongoClient, err := config.InitMongo(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewMongoUserRepository(mongoClient), mongoClient.Close, nil
}
