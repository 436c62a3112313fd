package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"pulsegym/internal/infrastructure/config"
	"pulsegym/internal/infrastructure/database"
	"pulsegym/internal/infrastructure/persistence/migrations"
	"pulsegym/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations for the roster and assessment tables.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply the schema for roster and assessment tables.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	log.Infow("running migrations", "environment", env)

	if err := migrations.MigrateRosterTables(database.Get()); err != nil {
		log.Errorw("roster migration failed", "error", err)
		return fmt.Errorf("roster migration failed: %w", err)
	}

	if err := migrations.MigrateAssessmentTables(database.Get()); err != nil {
		log.Errorw("assessment migration failed", "error", err)
		return fmt.Errorf("assessment migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}
