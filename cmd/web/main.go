package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/thesis-checker/internal/config"
	"alfredoptarigan/thesis-checker/internal/handlers"
	"alfredoptarigan/thesis-checker/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	encoder := services.NewEncoderService()
	checkerClient := services.NewCheckerClient(cfg.Checker.BaseURL, cfg.Checker.Timeout)
	log.Printf("✅ Checker client targets %s\n", cfg.Checker.BaseURL)

	var inspector services.PDFInspector
	if cfg.Preflight.Enabled {
		inspector = services.NewPDFInspector(cfg.Preflight.MinPages)
		log.Println("✅ PDF preflight enabled")
	}

	// Initialize Handlers
	pageHandler := handlers.NewPageHandler(cfg.Form.Degree)
	checkHandler := handlers.NewCheckHandler(
		encoder,
		checkerClient,
		inspector,
		cfg.Form.Degree,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Thesis Format Checker",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Checker.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// Routes
	app.Get("/", pageHandler.HandleIndex)
	app.Post("/check", checkHandler.HandleCheck)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"checker": cfg.Checker.BaseURL,
			"time":    time.Now(),
		})
	})

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
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
