package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusdesk/internal/interfaces/cli/migrate"
	"campusdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusdesk",
		Short: "CampusDesk - campus services backend",
		Long:  `CampusDesk is the campus services backend: accounts, the faculty directory, appointment booking, and facility complaints.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
