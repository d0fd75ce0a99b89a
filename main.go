package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"hadirku_backend/internals/configs"
	database "hadirku_backend/internals/databases"
	middlewares "hadirku_backend/internals/middlewares"
	routes "hadirku_backend/internals/route"
	routeDetails "hadirku_backend/internals/route/details"
	"hadirku_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()
	logger := configs.NewLogger()
	defer func() { _ = logger.Sync() }()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		BodyLimit:               6 * 1024 * 1024, // import jadwal maks 5 MB + overhead multipart
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.RequestContext())

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	database.ConnectRedis()

	container := routeDetails.NewContainer(database.DB, database.Redis, logger)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := container.Auth.EnsureAdmin(seedCtx,
		configs.GetEnv("ADMIN_EMAIL"), configs.GetEnv("ADMIN_PASSWORD"), configs.GetEnv("ADMIN_NAME")); err != nil {
		log.Printf("[WARN] seed admin gagal: %v", err)
	}
	seedCancel()

	// ⏱ scheduler setelah DB & Redis siap
	cronJobs, err := scheduler.Start(database.DB, container.QR)
	if err != nil {
		log.Fatalf("❌ Scheduler gagal: %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, container)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 90 * time.Second // ringkasan LLM bisa lama
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: cron → HTTP → Redis → DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	<-cronJobs.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.CloseRedis()
	database.Close()
}
