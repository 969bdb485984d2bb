// Package commands contains the CLI commands for the application tracker
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apptrack/apptrack/internal/api/v1/routes"
	"github.com/apptrack/apptrack/pkg/api/v1/client"
	"github.com/apptrack/apptrack/pkg/viewmodel"
)

// flag names
const (
	flagServerAddress = "server-address"
)

// environment variable names
const (
	envServerAddress = "APPTRACK_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress

	apiClient, err = client.NewClient(opts)
	return err
}

// newViewModel builds a view model over the shared API client
func newViewModel() *viewmodel.ViewModel {
	return viewmodel.New(apiClient)
}

func init() {
	// Set a basic default for the flag. PersistentPreRunE handles the env
	// var override.
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		fmt.Sprintf("Address of the record store server (env: %s)", envServerAddress))

	RootCmd.AddCommand(GetApplicationsCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "apptrack",
	Short: "apptrack CLI - track job applications from the terminal",
	Long: `apptrack is a command line tool for recording job applications, moving them
through their status lifecycle and deleting them, backed by the apptrack record store.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Precedence: flag > env var > default
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
