package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/auth"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/config"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/db"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/docs"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/extract"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/importer"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/menu"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/parlevel"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/prep"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/recipe"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/router"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/sales"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
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

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Config load failed:", err)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)
	parRepo := parlevel.NewPostgresRepository(pgDB)
	salesRepo := sales.NewPostgresRepository(pgDB)
	prepRepo := prep.NewPostgresRepository(pgDB)
	docsRepo := docs.NewRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	menuService := menu.NewService(menuRepo)
	recipeService := recipe.NewService(recipeRepo)
	parService := parlevel.NewService(parRepo)
	salesService := sales.NewService(salesRepo)
	prepService := prep.NewService(prepRepo, parService, salesService)

	geminiClient := extract.NewGeminiClient()
	docsService := docs.NewService(docsRepo, r2Client, geminiClient)

	importService := importer.NewService(
		cfg.Matching,
		docsRepo,
		menuService,
		salesService,
		parService,
		recipeService,
		menuService,
	)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(cfg, router.Handlers{
		Auth:     auth.NewHandler(authService, cfg.Auth.TokenTTL),
		Menu:     menu.NewHandler(menuService),
		Recipe:   recipe.NewHandler(recipeService),
		ParLevel: parlevel.NewHandler(parService),
		Sales:    sales.NewHandler(salesService),
		Prep:     prep.NewHandler(prepService),
		Docs:     docs.NewHandler(docsService),
		Importer: importer.NewHandler(importService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
