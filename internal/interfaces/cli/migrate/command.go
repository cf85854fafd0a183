package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
	"github.com/orris-inc/estatehub/internal/infrastructure/config"
	"github.com/orris-inc/estatehub/internal/infrastructure/database"
	"github.com/orris-inc/estatehub/internal/infrastructure/migration"
	"github.com/orris-inc/estatehub/internal/infrastructure/repository"
	"github.com/orris-inc/estatehub/internal/interfaces/cli/bootstrap"
	shareddb "github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

var (
	env      string
	name     string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations, then seed default values for settings that have no row yet.`,
		RunE:  runUp,
	}

	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Do not seed default settings")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new up/down SQL migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*config.Config, *migration.Manager, logger.Interface, error) {
	cfg, log, err := bootstrap.Init(bootstrap.ResolveEnv(env))
	if err != nil {
		return nil, nil, nil, err
	}

	manager, err := migration.NewManager(cfg.Database.MigrationStrategy, cfg.Database.MigrationsPath)
	if err != nil {
		database.Close()
		return nil, nil, nil, err
	}

	return cfg, manager, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, manager, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "strategy", manager.GetStrategy().GetName())

	if err := manager.Migrate(database.Get()); err != nil {
		return err
	}
	log.Infow("migrations completed successfully")

	if skipSeed {
		return nil
	}

	store := settingUsecases.NewSettingsStore(
		repository.NewSystemSettingRepository(database.Get(), log),
		shareddb.NewTransactionManager(database.Get()),
		cfg.Settings.CacheTTL,
		log.Named("settings"),
	)
	created, err := store.SeedDefaults(context.Background())
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	fmt.Printf("Migrations applied, %d default setting(s) seeded\n", created)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, manager, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	status, err := manager.Status(database.Get())
	if err != nil {
		log.Errorw("failed to get migration status", "error", err)
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment: %s\n", env)
	fmt.Printf("  Strategy:    %s\n", manager.GetStrategy().GetName())
	fmt.Printf("  Status:      %s\n", status)

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(bootstrap.ResolveEnv(env))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	up, down, err := migration.NewGenerator(cfg.Database.MigrationsPath).CreateMigration(name)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("Created %s\nCreated %s\n", up, down)
	return nil
}
