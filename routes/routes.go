package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"safarsaathi/config"
	controller "safarsaathi/controllers"
	"safarsaathi/middleware"
	"safarsaathi/models"
)

// SetupRoutes wires the landing page API. The store provider and credential
// source are built once at the composition root (main) and passed down.
func SetupRoutes(app *fiber.App, provider config.LeadStoreProvider, source config.CredentialSource, notify chan<- models.Lead) {
	leadController := controller.NewLeadController(provider, notify, log.New(os.Stdout, "LEAD: ", log.LstdFlags))
	configController := controller.NewConfigController(source, log.New(os.Stdout, "CONFIG: ", log.LstdFlags))

	// API group with request logging
	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api.Get("/config", configController.GetConfig)
	api.Get("/content", controller.GetContent)
	api.Post("/leads", middleware.LeadSubmitLimiter(), leadController.CreateLead)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("API routes initialized successfully")
}
