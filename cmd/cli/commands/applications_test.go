package commands

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apptrack/apptrack/internal/db/models"
	"github.com/apptrack/apptrack/pkg/api/v1/client/mock"
)

func TestApplicationsCommandStructure(t *testing.T) {
	subCmds := applicationsCmd.Commands()
	assert.Equal(t, 5, len(subCmds), "Expected 5 subcommands")

	names := make(map[string]bool)
	for _, sub := range subCmds {
		names[sub.Name()] = true
	}
	for _, want := range []string{"list", "add", "set-status", "delete", "stats"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestAddCommandFlags(t *testing.T) {
	assert.NotNil(t, addApplicationCmd.Flags().Lookup(flagCompany))
	assert.NotNil(t, addApplicationCmd.Flags().Lookup(flagPosition))
	assert.NotNil(t, addApplicationCmd.Flags().Lookup(flagStatus))
	assert.NotNil(t, addApplicationCmd.Flags().Lookup(flagDate))

	status := addApplicationCmd.Flags().Lookup(flagStatus)
	assert.Equal(t, "applied", status.DefValue)
}

func TestDeleteCommandFlags(t *testing.T) {
	assert.NotNil(t, deleteApplicationCmd.Flags().Lookup(flagAppID))
	assert.NotNil(t, deleteApplicationCmd.Flags().Lookup(flagYes))
}

// captureStdout runs fn while collecting everything written to stdout
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestListCommandOutput(t *testing.T) {
	prev := apiClient
	defer func() { apiClient = prev }()

	apiClient = &mock.Client{
		ListApplicationsFn: func(_ context.Context) ([]models.Application, error) {
			return []models.Application{
				{ID: 2, Company: "Globex", Position: "PM", Status: models.StatusInterview, DateApplied: "2025-02-01"},
				{ID: 1, Company: "Acme", Position: "Engineer", Status: models.StatusApplied, DateApplied: "2025-01-10"},
			}, nil
		},
	}

	listApplicationsCmd.SetContext(context.Background())
	out := captureStdout(t, func() {
		require.NoError(t, listApplicationsCmd.RunE(listApplicationsCmd, nil))
	})

	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "interview")
}

func TestStatsCommandOutput(t *testing.T) {
	prev := apiClient
	defer func() { apiClient = prev }()

	apiClient = &mock.Client{
		ListApplicationsFn: func(_ context.Context) ([]models.Application, error) {
			return []models.Application{
				{ID: 1, Company: "Acme", Position: "Engineer", Status: models.StatusApplied, DateApplied: "2025-01-10"},
			}, nil
		},
	}

	statsCmd.SetContext(context.Background())
	out := captureStdout(t, func() {
		require.NoError(t, statsCmd.RunE(statsCmd, nil))
	})

	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "total")
}
