package settings

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/orris-inc/estatehub/internal/infrastructure/database"
	"github.com/orris-inc/estatehub/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/orris-inc/estatehub/internal/interfaces/http"
)

var (
	env       string
	updatedBy uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and update admin settings",
		Long:  `Inspect effective admin settings or change them through the same validation the API applies.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newGetCommand(),
		newSetCommand(),
	)

	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Show one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGet,
	}
}

func newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update one setting",
		Args:  cobra.ExactArgs(2),
		RunE:  runSet,
	}

	cmd.Flags().UintVar(&updatedBy, "updated-by", 0, "Account ID recorded as the author of the change")

	return cmd
}

func openContainer(ctx context.Context) (*httpRouter.Container, error) {
	cfg, log, err := bootstrap.Init(bootstrap.ResolveEnv(env))
	if err != nil {
		return nil, err
	}

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to build application: %w", err)
	}
	return container, nil
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	container, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer database.Close()
	defer container.Shutdown()

	store := container.SettingsStore()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "KEY\tVALUE\tIS_DEFAULT\tTYPE")

	if len(args) == 1 {
		v, err := store.Get(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", v.Key(), v.String(), v.IsDefault(), v.Type())
		return nil
	}

	all, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range all {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", s.Definition.Key, s.Value.String(), s.Value.IsDefault(), s.Definition.Type)
	}
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	container, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer database.Close()
	defer container.Shutdown()

	v, err := container.SettingsStore().Set(ctx, args[0], args[1], updatedBy)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", v.Key(), v.String())
	return nil
}
