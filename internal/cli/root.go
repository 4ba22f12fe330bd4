package cli

import (
	"context"

	"github.com/hezhis/dispatch/internal/config"
	"github.com/spf13/cobra"
)

var Version = "dev"

type rootOptions struct {
	configPath string
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Route product commands to partially applied handlers",
		Long: `commandhandlers registers one handler per command type and dispatches
commands to them by type.

Commands:
  run         - Dispatch the sample deactivate and reactivate commands
  deactivate  - Dispatch a single deactivate command
  reactivate  - Dispatch a single reactivate command
  variants    - List the registered command types
  version     - Show version information`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a TOML config file")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newDeactivateCmd(opts))
	rootCmd.AddCommand(newReactivateCmd(opts))
	rootCmd.AddCommand(newVariantsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.close(ctx)

	return fn(ctx, a)
}
