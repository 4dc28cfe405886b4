package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/centuriesmutual/activity-ledger/internal/config"
	"github.com/centuriesmutual/activity-ledger/internal/database"
	"github.com/centuriesmutual/activity-ledger/internal/handlers"
	"github.com/centuriesmutual/activity-ledger/internal/middleware"
	"github.com/centuriesmutual/activity-ledger/internal/services"

	_ "github.com/centuriesmutual/activity-ledger/docs/api" // Swagger docs
)

// @title Activity Ledger API
// @version 1.0.0
// @description Client activity ledger with audited message, document and share-link tracking
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/centuriesmutual/activity-ledger
// @contact.email engineering@centuriesmutual.com

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ledger := services.New(db, cfg)

	// Background retention and share-link sweeper
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go ledger.RunSweeper(sweepCtx)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("activityledger")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	api.Use(middleware.RequestMeta())

	clientHandler := &handlers.ClientHandler{Ledger: ledger}
	messageHandler := &handlers.MessageHandler{Ledger: ledger}
	documentHandler := &handlers.DocumentHandler{Ledger: ledger}
	webhookHandler := &handlers.WebhookHandler{Ledger: ledger}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Client registry
	api.Post("/clients", clientHandler.CreateClient)
	api.Get("/clients/:clientId", clientHandler.GetClient)
	api.Patch("/clients/:clientId", clientHandler.UpdateClient)
	api.Delete("/clients/:clientId", clientHandler.DeactivateClient)
	api.Post("/clients/:clientId/reactivate", clientHandler.ReactivateClient)
	api.Get("/clients/:clientId/stats", clientHandler.GetClientStats)
	api.Get("/clients/:clientId/audit", clientHandler.ListClientAudit)
	api.Get("/clients/:clientId/messages", messageHandler.ListClientMessages)
	api.Get("/clients/:clientId/documents", documentHandler.ListClientDocuments)

	// Message lifecycle
	api.Post("/messages", messageHandler.CreateMessage)
	api.Get("/messages/:messageId", messageHandler.GetMessage)
	api.Post("/messages/:messageId/transition", messageHandler.TransitionMessage)

	// Document registry and sharing
	api.Post("/documents", documentHandler.CreateDocument)
	api.Get("/documents/:documentId", documentHandler.GetDocument)
	api.Post("/documents/:documentId/share", documentHandler.CreateShareLink)
	api.Post("/documents/:documentId/access", documentHandler.RecordAccess)

	// Provider callbacks
	api.Post("/webhooks/events", webhookHandler.HandleEvent)

	// Health
	api.Get("/health", healthHandler.Check)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		stopSweeper()
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "unknown",
	})
}
