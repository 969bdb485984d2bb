package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/apptrack/apptrack/internal/errors"
	"github.com/apptrack/apptrack/internal/logger"
	"github.com/apptrack/apptrack/internal/services"
)

// ApplicationHandler handles HTTP requests for application record operations
type ApplicationHandler struct {
	service *services.Application
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(service *services.Application) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
	}
}

// ListApplications returns every application sorted by applied date descending
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	apps, err := h.service.List(c.Context())
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgListAppsFailed, err)
	}
	return c.JSON(apps)
}

// CreateApplication stores a new application and returns the created record
func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	var params CreateApplicationParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}

	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	app, err := h.service.Create(c.Context(), params.ToModel())
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			return respondWithError(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCreateAppFailed, err)
	}

	return c.JSON(app)
}

// UpdateApplicationStatus sets the status of the application matching the
// path id and returns the updated record
func (h *ApplicationHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidAppID, err)
	}

	var params UpdateApplicationStatusParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}

	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	app, err := h.service.UpdateStatus(c.Context(), id, params.Status)
	if errors.Is(err, apperrors.ErrNotFound) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgAppNotFound, nil)
	} else if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgUpdateAppFailed, err)
	}

	return c.JSON(app)
}

// DeleteApplication removes the application matching the path id.
// Deleting an id that does not exist still reports success.
func (h *ApplicationHandler) DeleteApplication(c *fiber.Ctx) error {
	id, err := parseApplicationID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidAppID, err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgDeleteAppFailed, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func parseApplicationID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondWithError writes the error payload shared by every endpoint.
// The detail error stays server-side; it is logged, not returned.
func respondWithError(c *fiber.Ctx, code int, message string, detail error) error {
	if detail != nil {
		logger.ErrorWithFields(message, map[string]interface{}{
			"path":   c.Path(),
			"method": c.Method(),
			"error":  detail.Error(),
		})
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
