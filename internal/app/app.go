package app

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/layarlegenda59/kasirku/internal/config"
	"github.com/layarlegenda59/kasirku/internal/db"
	httpdelivery "github.com/layarlegenda59/kasirku/internal/delivery/http"
	"github.com/layarlegenda59/kasirku/internal/storage"
)

type App struct {
	f     *fiber.App
	cfg   config.Config
	store storage.Store
}

func New() *App {
	cfg := config.Load()

	store, err := db.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("storage open failed: %v", err)
	}
	log.Printf("using %s storage", cfg.StorageDriver)

	f := fiber.New(fiber.Config{
		AppName:   "kasirku",
		BodyLimit: 5 * 1024 * 1024, // product images arrive as data URIs
	})

	f.Use(recover.New())
	f.Use(logger.New())
	f.Use(cors.New())

	httpdelivery.RegisterRoutes(f, store)

	return &App{f: f, cfg: cfg, store: store}
}

func (a *App) Run() error {
	defer a.store.Close()
	return a.f.Listen(":" + a.cfg.Port)
}
