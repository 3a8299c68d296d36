package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SirCoffee1429/prep-pal-sub000/internal/auth"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/config"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/docs"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/importer"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/menu"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/middleware"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/parlevel"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/prep"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/recipe"
	"github.com/SirCoffee1429/prep-pal-sub000/internal/sales"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *auth.Handler
	Menu     *menu.Handler
	Recipe   *recipe.Handler
	ParLevel *parlevel.Handler
	Sales    *sales.Handler
	Prep     *prep.Handler
	Docs     *docs.Handler
	Importer *importer.Handler
}

// New builds the gin engine with CORS, auth middleware and all routes.
// Kept separate from main so tests can mount the full route table.
func New(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	manageOnly := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── MENU ─────────────────────────
	menuGroup := r.Group("/menu-items")
	menuGroup.Use(middleware.AuthMiddleware())
	{
		menuGroup.GET("", h.Menu.List)
		menuGroup.GET("/:id", h.Menu.Get)
		menuGroup.POST("", manageOnly, h.Menu.Create)
		menuGroup.PUT("/:id", manageOnly, h.Menu.Update)
		menuGroup.DELETE("/:id", manageOnly, h.Menu.Delete)
	}

	// ───────────────────────── RECIPES ─────────────────────────
	recipes := r.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware())
	{
		recipes.GET("", h.Recipe.List)
		recipes.GET("/:id", h.Recipe.Get)
		recipes.POST("", manageOnly, h.Recipe.Create)
		recipes.PUT("/:id", manageOnly, h.Recipe.Update)
		recipes.DELETE("/:id", manageOnly, h.Recipe.Delete)
	}

	// ───────────────────────── PAR LEVELS ─────────────────────────
	pars := r.Group("/par-levels")
	pars.Use(middleware.AuthMiddleware())
	{
		pars.GET("", h.ParLevel.List)
		pars.PUT("", manageOnly, h.ParLevel.Upsert)
	}

	// ───────────────────────── SALES ─────────────────────────
	salesGroup := r.Group("/sales")
	salesGroup.Use(middleware.AuthMiddleware())
	{
		salesGroup.GET("", h.Sales.List)
		salesGroup.GET("/summary", h.Sales.Summary)
	}

	// ───────────────────────── PREP LISTS ─────────────────────────
	prepGroup := r.Group("/prep-lists")
	prepGroup.Use(middleware.AuthMiddleware())
	{
		prepGroup.POST("/generate", manageOnly, h.Prep.Generate)
		prepGroup.GET("/:date", h.Prep.GetByDate)
		prepGroup.PATCH("/items/:item_id/completed", h.Prep.SetItemCompleted)
	}

	// ───────────────────────── DOCUMENTS ─────────────────────────
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware(), manageOnly)
	{
		documents.POST("/upload", h.Docs.Upload)
		documents.GET("/:id/status", h.Docs.GetStatus)
		documents.POST("/:id/retry", h.Docs.Retry)
		documents.GET("/batch/:batch", h.Docs.ListBatch)
	}

	// ───────────────────────── IMPORTS ─────────────────────────
	imports := r.Group("/imports")
	imports.Use(middleware.AuthMiddleware(), manageOnly)
	{
		imports.GET("/:batch/preview", h.Importer.Preview)
		imports.POST("/:batch/commit", h.Importer.Commit)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
