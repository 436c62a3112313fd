package main

import (
	"os"

	"github.com/spf13/cobra"

	"pulsegym/internal/interfaces/cli/migrate"
	"pulsegym/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pulsegym",
		Short: "PulseGym - member retention risk scoring",
		Long:  `PulseGym scores gym members for churn risk and serves roster health over HTTP.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
