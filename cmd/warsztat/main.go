package main

import (
	"os"

	"github.com/spf13/cobra"

	"warsztat/internal/interfaces/cli/configcmd"
	"warsztat/internal/interfaces/cli/migrate"
	"warsztat/internal/interfaces/cli/policycmd"
	"warsztat/internal/interfaces/cli/server"
)

// @title Warsztat API
// @version 1.0
// @description Service-request management for a car workshop.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "warsztat",
		Short: "Warsztat - workshop service-request management",
		Long:  `Warsztat is a web service for submitting and reviewing car workshop service requests, with account management and an archive for closed requests.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		configcmd.NewCommand(),
		policycmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
