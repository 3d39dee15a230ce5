package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/healthmitra/healthmitra-be/internal/api"
	"github.com/healthmitra/healthmitra-be/internal/api/middleware"
	"github.com/healthmitra/healthmitra-be/internal/chat"
	"github.com/healthmitra/healthmitra-be/internal/db"
	"github.com/healthmitra/healthmitra-be/internal/fallback"
	"github.com/healthmitra/healthmitra-be/internal/language"
	"github.com/healthmitra/healthmitra-be/internal/livefeed"
	"github.com/healthmitra/healthmitra-be/internal/prompt"
	"github.com/healthmitra/healthmitra-be/internal/reference"
	"github.com/healthmitra/healthmitra-be/pkg/openai"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Get configuration from environment
	port := getEnv("PORT", "8080")
	databaseURL := getEnv("DATABASE_URL", "")
	openaiAPIKey := getEnv("OPENAI_API_KEY", "")
	openaiModel := getEnv("OPENAI_MODEL", "")
	feedURL := getEnv("OUTBREAK_FEED_URL", "")

	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if openaiAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	// Initialize database
	database, err := db.NewFromURL(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	log.Println("✅ Database connected")

	ctx := context.Background()
	if err := db.Migrate(ctx, database); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	if err := db.Seed(ctx, database); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	log.Println("✅ Reference data seeded")

	// Initialize components
	store := reference.NewStore(database)
	feed := livefeed.NewClient(livefeed.Config{FeedURL: feedURL})
	composer := fallback.NewComposer(store, feed)
	resolver := language.NewResolver(language.NewWhatLangDetector())
	promptBuilder := prompt.NewBuilder()
	llmClient := openai.NewClient(openai.Config{
		APIKey: openaiAPIKey,
		Model:  openaiModel,
	})

	engine := chat.NewEngine(promptBuilder, llmClient, composer, store)
	chatHandler := api.NewChatHandler(resolver, engine, composer)

	// Setup Gin router
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.NoCache())
	router.Use(middleware.RequestID())

	router.POST("/chat", chatHandler.Chat)
	router.GET("/health", chatHandler.Health)
	router.GET("/api", chatHandler.Status)
	router.HEAD("/api", chatHandler.Status)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%s", port)
		log.Printf("📝 API endpoints:")
		log.Printf("   POST   /chat")
		log.Printf("   GET    /health")
		log.Printf("   GET    /api")
		log.Printf("")
		log.Printf("Press Ctrl+C to stop")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
