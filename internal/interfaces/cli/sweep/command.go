package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orris-inc/estatehub/internal/infrastructure/database"
	"github.com/orris-inc/estatehub/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/orris-inc/estatehub/internal/interfaces/http"
)

var (
	env     string
	timeout time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one SLA sweep cycle",
		Long:  `Evaluate every open inquiry once and emit any SLA breach or stale notifications that are due.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Abort the sweep after this long")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	emitted, err := container.RunSweep(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Printf("Sweep finished, %d notification event(s) emitted\n", emitted)
	return nil
}
