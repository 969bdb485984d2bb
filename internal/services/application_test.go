package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apptrack/apptrack/internal/db/models"
	"github.com/apptrack/apptrack/internal/db/repos"
	apperrors "github.com/apptrack/apptrack/internal/errors"
)

func newTestService(t *testing.T) *Application {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create in-memory database")
	require.NoError(t, db.AutoMigrate(&models.Application{}))

	t.Cleanup(func() {
		sqlDB, dbErr := db.DB()
		if dbErr == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	})

	return NewApplicationService(repos.NewApplicationRepository(db))
}

func TestCreateRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Application{
		Company:     "Acme",
		Position:    "Engineer",
		Status:      models.StatusApplied,
		DateApplied: "2025-01-10",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	apps, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, created.ID, apps[0].ID)
	assert.Equal(t, "Acme", apps[0].Company)
	assert.Equal(t, "Engineer", apps[0].Position)
	assert.Equal(t, models.StatusApplied, apps[0].Status)
	assert.Equal(t, "2025-01-10", apps[0].DateApplied)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		app  models.Application
	}{
		{
			name: "empty company",
			app:  models.Application{Position: "Engineer", Status: models.StatusApplied, DateApplied: "2025-01-10"},
		},
		{
			name: "empty position",
			app:  models.Application{Company: "Acme", Status: models.StatusApplied, DateApplied: "2025-01-10"},
		},
		{
			name: "unknown status",
			app:  models.Application{Company: "Acme", Position: "Engineer", Status: "ghosted", DateApplied: "2025-01-10"},
		},
		{
			name: "bad date",
			app:  models.Application{Company: "Acme", Position: "Engineer", Status: models.StatusApplied, DateApplied: "January 10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := tt.app
			_, err := svc.Create(ctx, &app)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		})
	}

	apps, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, apps, "no rejected create may persist")
}

func TestCreateDefaultsEmptyStatus(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), &models.Application{
		Company:     "Acme",
		Position:    "Engineer",
		DateApplied: "2025-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, created.Status)
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Application{
		Company:     "Acme",
		Position:    "Engineer",
		Status:      models.StatusApplied,
		DateApplied: "2025-01-10",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, "offer")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffer, updated.Status)
	assert.Equal(t, created.Company, updated.Company)
	assert.Equal(t, created.Position, updated.Position)
	assert.Equal(t, created.DateApplied, updated.DateApplied)

	// Unknown status string is rejected before touching the store
	_, err = svc.UpdateStatus(ctx, created.ID, "ghosted")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	// Missing id is a not-found error
	_, err = svc.UpdateStatus(ctx, created.ID+100, "offer")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	apps, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestDeleteIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Application{
		Company:     "Acme",
		Position:    "Engineer",
		Status:      models.StatusApplied,
		DateApplied: "2025-01-10",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	apps, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, apps)

	require.NoError(t, svc.Delete(ctx, created.ID), "second delete succeeds")
}
