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
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/handlers"
	"alfredoptarigan/resume-screener/internal/middleware"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	ctx := context.Background()

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	log.Println("✅ Repositories initialized successfully")

	seeded, err := categoryRepo.SeedDefaults(ctx, models.DefaultJobCategories())
	if err != nil {
		log.Fatalf("❌ Failed to seed job categories: %v", err)
	}
	if seeded > 0 {
		log.Printf("🌱 Seeded %d job categories\n", seeded)
	}

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Gemini serves text generation when selected and embeddings when indexing
	var geminiService services.GeminiService
	if cfg.LLM.Provider == config.ProviderGemini || cfg.IndexingEnabled() {
		geminiService, err = services.NewGeminiService(ctx, cfg.Gemini)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	}

	generator, err := services.NewTextGenerator(cfg, geminiService)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}
	log.Printf("✅ LLM provider initialized: %s\n", cfg.LLM.Provider)

	// Initialize Qdrant
	var indexer services.CandidateIndexer
	if cfg.IndexingEnabled() {
		qdrantIndex, err := services.NewQdrantIndex(cfg.Qdrant)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}

		if err := qdrantIndex.InitCollection(ctx); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}

		indexer = services.NewCandidateIndexer(geminiService, qdrantIndex)
		log.Println("✅ Qdrant initialized successfully")
	} else {
		log.Println("ℹ️  QDRANT_URL not set, candidate indexing disabled")
	}

	screeningService := services.NewScreeningService(
		services.NewFileFetcher(),
		services.NewProfileExtractor(generator),
		services.NewCategoryClassifier(generator),
		resumeRepo,
		categoryRepo,
		indexer,
	)
	log.Println("✅ Screening service initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxRequestSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.CORS())

	app.Static("/uploads", cfg.Storage.UploadPath)

	handlers.RegisterRoutes(app, handlers.Routes{
		Process: handlers.NewProcessHandler(screeningService),
		Upload:  handlers.NewUploadHandler(storageService),
		Resume:  handlers.NewResumeHandler(resumeRepo, categoryRepo, indexer),
		Contact: handlers.NewContactHandler(contactRepo),
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
