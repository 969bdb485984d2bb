package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/apptrack/apptrack/cmd/cli/commands"
)

func main() {
	// Load environment variables from .env file if present, before flag
	// and env precedence is resolved
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
