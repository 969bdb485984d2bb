// Package services provides the business logic for the record store
package services

import (
	"context"

	"github.com/apptrack/apptrack/internal/db/models"
	"github.com/apptrack/apptrack/internal/db/repos"
)

// Application provides business logic for application record operations.
// It owns validation; the repository below it persists whatever it is given.
type Application struct {
	repo *repos.ApplicationRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(repo *repos.ApplicationRepository) *Application {
	return &Application{
		repo: repo,
	}
}

// List retrieves all applications ordered by applied date descending
func (s *Application) List(ctx context.Context) ([]models.Application, error) {
	return s.repo.List(ctx)
}

// Create validates and stores a new application, returning the stored record
// with its assigned id and creation timestamp
func (s *Application) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.Status == "" {
		app.Status = models.StatusApplied
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus sets the status of the application matching id. The status
// string must name a member of the fixed status set.
func (s *Application) UpdateStatus(ctx context.Context, id uint, status string) (*models.Application, error) {
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, parsed)
}

// Delete removes the application matching id; deleting a missing id succeeds
func (s *Application) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
