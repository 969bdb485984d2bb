// Package mock provides a mock implementation of the API client for testing
package mock

import (
	"context"
	"fmt"

	"github.com/apptrack/apptrack/internal/api/v1/handlers"
	"github.com/apptrack/apptrack/internal/db/models"
	"github.com/apptrack/apptrack/pkg/api/v1/client"
)

var _ client.Client = &Client{}

// Client implements the client.Client interface for testing.
// Set the Fn fields to control behavior; calls are recorded for verification.
type Client struct {
	HealthCheckFn             func(ctx context.Context) (map[string]string, error)
	ListApplicationsFn        func(ctx context.Context) ([]models.Application, error)
	CreateApplicationFn       func(ctx context.Context, params handlers.CreateApplicationParams) (models.Application, error)
	UpdateApplicationStatusFn func(ctx context.Context, id uint, params handlers.UpdateApplicationStatusParams) (models.Application, error)
	DeleteApplicationFn       func(ctx context.Context, id uint) error

	// Call tracking for verification
	ListApplicationsCalls  int
	CreateApplicationCalls []handlers.CreateApplicationParams
	UpdateApplicationCalls []UpdateApplicationCall
	DeleteApplicationCalls []uint
}

// UpdateApplicationCall records the arguments of one UpdateApplicationStatus call
type UpdateApplicationCall struct {
	ID     uint
	Params handlers.UpdateApplicationStatusParams
}

// HealthCheck calls HealthCheckFn if set
func (m *Client) HealthCheck(ctx context.Context) (map[string]string, error) {
	if m.HealthCheckFn != nil {
		return m.HealthCheckFn(ctx)
	}
	return map[string]string{"status": "healthy"}, nil
}

// ListApplications calls ListApplicationsFn if set
func (m *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	m.ListApplicationsCalls++
	if m.ListApplicationsFn != nil {
		return m.ListApplicationsFn(ctx)
	}
	return nil, nil
}

// CreateApplication calls CreateApplicationFn if set
func (m *Client) CreateApplication(ctx context.Context, params handlers.CreateApplicationParams) (models.Application, error) {
	m.CreateApplicationCalls = append(m.CreateApplicationCalls, params)
	if m.CreateApplicationFn != nil {
		return m.CreateApplicationFn(ctx, params)
	}
	return models.Application{}, fmt.Errorf("CreateApplicationFn not set")
}

// UpdateApplicationStatus calls UpdateApplicationStatusFn if set
func (m *Client) UpdateApplicationStatus(ctx context.Context, id uint, params handlers.UpdateApplicationStatusParams) (models.Application, error) {
	m.UpdateApplicationCalls = append(m.UpdateApplicationCalls, UpdateApplicationCall{ID: id, Params: params})
	if m.UpdateApplicationStatusFn != nil {
		return m.UpdateApplicationStatusFn(ctx, id, params)
	}
	return models.Application{}, fmt.Errorf("UpdateApplicationStatusFn not set")
}

// DeleteApplication calls DeleteApplicationFn if set
func (m *Client) DeleteApplication(ctx context.Context, id uint) error {
	m.DeleteApplicationCalls = append(m.DeleteApplicationCalls, id)
	if m.DeleteApplicationFn != nil {
		return m.DeleteApplicationFn(ctx, id)
	}
	return nil
}
