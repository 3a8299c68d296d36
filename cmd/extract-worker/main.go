package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/config"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/db"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/docs"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/extract"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("🧠 Extraction worker starting...")

	required := []string{
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Config load failed:", err)
	}

	// Database connection
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	log.Println("✅ Connected to PostgreSQL")

	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	repo := docs.NewRepository(pgDB)
	service := docs.NewService(repo, r2Client, extract.NewGeminiClient())

	log.Println("✅ Extraction worker initialized and running...")
	log.Printf("Processing document uploads every %s. Press Ctrl+C to stop.", cfg.Worker.PollInterval)

	// Process document uploads indefinitely
	ticker := time.NewTicker(cfg.Worker.PollInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := service.ProcessOne(context.Background()); err != nil {
			log.Printf("⚠️  Extraction error: %v", err)
		}
	}
}
