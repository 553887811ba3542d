package main

import (
	"os"

	"github.com/spf13/cobra"

	"grievance/internal/interfaces/cli/migrate"
	"grievance/internal/interfaces/cli/seed"
	"grievance/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "grievance",
		Short: "Grievance - student concern tracking service",
		Long:  `Grievance is a student concern tracking service with a built-in HTTP server, migration tools, and seeding commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
