package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"otonavi/internal/config"
	"otonavi/internal/handler"
	"otonavi/internal/middleware"
	"otonavi/internal/repository"
	"otonavi/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (caching and compose state fall back gracefully)", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, cfg)
	handlers := handler.NewHandlers(services, repos)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	app.Use(middleware.Visitor())

	setupRoutes(app, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	pages := v1.Group("/pages/:page")
	pages.Get("/comments", h.Comment.List)
	pages.Get("/comments/tree", h.Comment.ListTree)
	pages.Post("/comments", h.Comment.Create)

	pages.Get("/thread", h.Thread.View)
	pages.Post("/thread/reply/:commentId", h.Thread.ToggleReply)
	pages.Post("/thread/draft", h.Thread.SaveDraft)
	pages.Post("/thread/submit", h.Thread.Submit)

	content := v1.Group("/content")
	content.Get("/", h.Content.ListFeatured)
	content.Get("/:type", h.Content.ListByType)
	content.Get("/:type/:slug", h.Content.GetBySlug)

	catalog := v1.Group("/catalog")
	catalog.Get("/artists", h.Catalog.SearchArtists)
	catalog.Get("/artists/:artistId", h.Catalog.GetArtist)
	catalog.Get("/albums", h.Catalog.SearchAlbums)
	catalog.Get("/albums/:albumId", h.Catalog.GetAlbum)

	seo := v1.Group("/seo")
	seo.Get("/sitemap", h.SEO.Sitemap)
}
