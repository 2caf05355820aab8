package main

import (
	"os"

	"github.com/spf13/cobra"

	"linkdeck/internal/interfaces/cli/migrate"
	"linkdeck/internal/interfaces/cli/server"
)

// @title Linkdeck API
// @version 1.0
// @description Dashboard backend for linking Instagram business accounts and YouTube channels.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "linkdeck",
		Short: "Linkdeck - social account linking dashboard backend",
		Long:  `Linkdeck is the dashboard backend service for connecting and managing Instagram business accounts and YouTube channels.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
