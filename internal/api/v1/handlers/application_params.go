package handlers

import (
	"fmt"
	"strings"

	"github.com/apptrack/apptrack/internal/db/models"
	apperrors "github.com/apptrack/apptrack/internal/errors"
)

// CreateApplicationParams holds the request body for creating an application
type CreateApplicationParams struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Status      string `json:"status"`
	DateApplied string `json:"dateApplied"`
}

// Validate ensures the create parameters are well formed
func (p *CreateApplicationParams) Validate() error {
	if strings.TrimSpace(p.Company) == "" {
		return fmt.Errorf("%w: company is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("%w: position is required", apperrors.ErrInvalidInput)
	}
	if p.Status != "" {
		if _, err := models.ParseStatus(p.Status); err != nil {
			return err
		}
	}
	if p.DateApplied == "" {
		return fmt.Errorf("%w: dateApplied is required", apperrors.ErrInvalidInput)
	}
	return nil
}

// ToModel converts the parameters into an Application model
func (p *CreateApplicationParams) ToModel() *models.Application {
	return &models.Application{
		Company:     strings.TrimSpace(p.Company),
		Position:    strings.TrimSpace(p.Position),
		Status:      models.Status(p.Status),
		DateApplied: p.DateApplied,
	}
}

// UpdateApplicationStatusParams holds the request body for a status update.
// Status arrives as a plain string so the service can report an unknown value
// as a validation error instead of a decode failure.
type UpdateApplicationStatusParams struct {
	Status string `json:"status"`
}

// Validate ensures the update parameters are well formed
func (p *UpdateApplicationStatusParams) Validate() error {
	if p.Status == "" {
		return fmt.Errorf("%w: status is required", apperrors.ErrInvalidInput)
	}
	if _, err := models.ParseStatus(p.Status); err != nil {
		return err
	}
	return nil
}
