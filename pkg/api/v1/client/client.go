// Package client provides the API client for the record store
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/apptrack/apptrack/internal/api/v1/handlers"
	"github.com/apptrack/apptrack/internal/api/v1/routes"
	"github.com/apptrack/apptrack/internal/db/models"
	apperrors "github.com/apptrack/apptrack/internal/errors"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for the record store API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Application Endpoints
	ListApplications(ctx context.Context) ([]models.Application, error)
	CreateApplication(ctx context.Context, params handlers.CreateApplicationParams) (models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uint, params handlers.UpdateApplicationStatusParams) (models.Application, error)
	DeleteApplication(ctx context.Context, id uint) error
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	_, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// errorResponse is the error payload returned by every endpoint
type errorResponse struct {
	Error string `json:"error"`
}

// doRequest sends the HTTP request and decodes the response into v
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrTransport, errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		return decodeError(statusCode, body)
	}

	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// decodeError maps a non-success response onto the shared error categories
func decodeError(statusCode int, body []byte) error {
	message := string(body)
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	switch statusCode {
	case fiber.StatusBadRequest:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, message)
	case fiber.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, message)
	default:
		return fmt.Errorf("%w: server returned %d: %s", apperrors.ErrStorage, statusCode, message)
	}
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// HealthCheck checks the health of the API server
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &response)
	return response, err
}

// ListApplications retrieves all applications sorted by applied date descending
func (c *APIClient) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := c.executeRequest(ctx, http.MethodGet, routes.GetApplicationsURL(), nil, &apps)
	return apps, err
}

// CreateApplication stores a new application and returns the created record
func (c *APIClient) CreateApplication(ctx context.Context, params handlers.CreateApplicationParams) (models.Application, error) {
	var app models.Application
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateApplicationURL(), params, &app)
	return app, err
}

// UpdateApplicationStatus sets the status of the application matching id and
// returns the server-confirmed record
func (c *APIClient) UpdateApplicationStatus(ctx context.Context, id uint, params handlers.UpdateApplicationStatusParams) (models.Application, error) {
	var app models.Application
	err := c.executeRequest(ctx, http.MethodPut, routes.UpdateApplicationStatusURL(id), params, &app)
	return app, err
}

// DeleteApplication removes the application matching id
func (c *APIClient) DeleteApplication(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteApplicationURL(id), nil, nil)
}
