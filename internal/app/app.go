// Package app assembles the record store server
package app

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/apptrack/apptrack/internal/api/middleware"
	"github.com/apptrack/apptrack/internal/api/v1/handlers"
	"github.com/apptrack/apptrack/internal/api/v1/routes"
	"github.com/apptrack/apptrack/internal/db/repos"
	"github.com/apptrack/apptrack/internal/services"
)

// New wires the repositories, services and handlers onto a fiber app
func New(database *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Logger())

	applicationRepo := repos.NewApplicationRepository(database)
	applicationService := services.NewApplicationService(applicationRepo)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	routes.RegisterRoutes(app, applicationHandler)

	return app
}

// errorHandler catches errors that escape the handlers, such as unknown
// routes, and reports them in the same `{error}` shape as the API
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
