package repos

import (
	"context"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apptrack/apptrack/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	ctx     context.Context
	appRepo *ApplicationRepository
}

func (s *DBRepositoryTestSuite) SetupTest() {
	// Create new in-memory database
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	// Run migrations
	err = db.AutoMigrate(&models.Application{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.appRepo = NewApplicationRepository(s.db)
	s.ctx = context.Background()
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) createTestApplication() *models.Application {
	return s.createApplication("Acme", "Engineer", models.StatusApplied, "2025-01-10")
}

func (s *DBRepositoryTestSuite) createApplication(company, position string, status models.Status, dateApplied string) *models.Application {
	app := &models.Application{
		Company:     company,
		Position:    position,
		Status:      status,
		DateApplied: dateApplied,
	}
	err := s.appRepo.Create(s.ctx, app)
	s.Require().NoError(err, "Failed to create test application")
	s.Require().NotZero(app.ID)
	return app
}
