// Package repos contains the database repositories
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/apptrack/apptrack/internal/db/models"
	apperrors "github.com/apptrack/apptrack/internal/errors"
)

// ApplicationRepository handles database operations for application records
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository instance
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// List retrieves every application ordered by applied date, newest first.
// Ties on the applied date fall back to id so the ordering is stable.
func (r *ApplicationRepository) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Order("date_applied DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list applications: %v", apperrors.ErrStorage, err)
	}
	return apps, nil
}

// Create inserts a new application and fills in the assigned ID and CreatedAt
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			// BeforeCreate validation, not a storage problem
			return err
		}
		return fmt.Errorf("%w: failed to create application: %v", apperrors.ErrStorage, err)
	}
	return nil
}

// GetByID retrieves an application by its ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: application %d", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get application: %v", apperrors.ErrStorage, err)
	}
	return &app, nil
}

// UpdateStatus sets the status of the application matching id and returns
// the updated record. A missing id is an error.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uint, status models.Status) (*models.Application, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update(models.ApplicationStatusField, status)

	if result.Error != nil {
		return nil, fmt.Errorf("%w: failed to update application status: %v", apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: application %d", apperrors.ErrNotFound, id)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the application matching id. Deleting an id that does not
// exist is a no-op, not an error.
func (r *ApplicationRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Application{}, id).Error
	if err != nil {
		return fmt.Errorf("%w: failed to delete application: %v", apperrors.ErrStorage, err)
	}
	return nil
}
