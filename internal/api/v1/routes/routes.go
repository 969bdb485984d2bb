// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/apptrack/apptrack/internal/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "3001"
	// APIPrefix is the prefix for all API endpoints
	APIPrefix = "/api"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Application routes
	GetApplications         = "GetApplications"
	CreateApplication       = "CreateApplication"
	UpdateApplicationStatus = "UpdateApplicationStatus"
	DeleteApplication       = "DeleteApplication"
)

// RegisterRoutes configures all the API routes
//
// NOTE: route ordering is important because routes will try and match in the
// order they are registered; param urls (ie /:id) go last.
func RegisterRoutes(app *fiber.App, applicationHandler *handlers.ApplicationHandler) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// Application endpoints
	api := app.Group(APIPrefix)
	applications := api.Group("/applications")
	applications.Get("/", applicationHandler.ListApplications).Name(GetApplications)
	applications.Post("/", applicationHandler.CreateApplication).Name(CreateApplication)
	applications.Put("/:id", applicationHandler.UpdateApplicationStatus).Name(UpdateApplicationStatus)
	applications.Delete("/:id", applicationHandler.DeleteApplication).Name(DeleteApplication)
}

// Route helpers, shared with the API client so URLs stay in one place.

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return "/health"
}

// GetApplicationsURL returns the URL for listing applications
func GetApplicationsURL() string {
	return fmt.Sprintf("%s/applications", APIPrefix)
}

// CreateApplicationURL returns the URL for creating an application
func CreateApplicationURL() string {
	return fmt.Sprintf("%s/applications", APIPrefix)
}

// UpdateApplicationStatusURL returns the URL for updating an application's status
func UpdateApplicationStatusURL(id uint) string {
	return fmt.Sprintf("%s/applications/%d", APIPrefix, id)
}

// DeleteApplicationURL returns the URL for deleting an application
func DeleteApplicationURL(id uint) string {
	return fmt.Sprintf("%s/applications/%d", APIPrefix, id)
}
