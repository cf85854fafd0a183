package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/estatehub/internal/interfaces/cli/migrate"
	"github.com/orris-inc/estatehub/internal/interfaces/cli/server"
	"github.com/orris-inc/estatehub/internal/interfaces/cli/settings"
	"github.com/orris-inc/estatehub/internal/interfaces/cli/sweep"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "estatehub",
		Short: "estatehub - listing and commission rule engine",
		Long:  `estatehub serves the property marketplace rule engine: listing numbers, commission splits, recruiter bonuses, inquiry SLAs and notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
		settings.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
