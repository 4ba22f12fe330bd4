package cli

import (
	"context"
	"fmt"

	"github.com/hezhis/dispatch"
	"github.com/hezhis/dispatch/internal/commands"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Dispatch the sample commands",
		Long: `Bootstraps the dispatcher and sends one deactivate and one reactivate
command through it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				add5 := dispatch.Apply(commands.Add, 5)
				a.logger.Info().Int("add5(15)", add5(15)).Msg("partial application")

				samples := []commands.Command{
					commands.DeactivateCommand{ProductID: 999, Reason: "A need this deactivated"},
					commands.ReactivateCommand{ID: 212121, Reason: "I'm turning it back on"},
				}
				for _, msg := range samples {
					if err := a.dispatch(ctx, msg); err != nil {
						return err
					}
				}
				return a.report()
			})
		},
	}
}

func newDeactivateCmd(opts *rootOptions) *cobra.Command {
	var msg commands.DeactivateCommand

	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "Dispatch a deactivate command",
		Long: `Dispatches a single deactivate command.

Example:
  commandhandlers deactivate --product-id 999 --reason "A need this deactivated"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				return a.dispatch(ctx, msg)
			})
		},
	}
	cmd.Flags().IntVar(&msg.ProductID, "product-id", 0, "Product to deactivate")
	cmd.Flags().StringVar(&msg.Reason, "reason", "", "Why the product is deactivated")
	_ = cmd.MarkFlagRequired("product-id")
	return cmd
}

func newReactivateCmd(opts *rootOptions) *cobra.Command {
	var msg commands.ReactivateCommand

	cmd := &cobra.Command{
		Use:   "reactivate",
		Short: "Dispatch a reactivate command",
		Long: `Dispatches a single reactivate command.

Example:
  commandhandlers reactivate --id 212121 --reason "I'm turning it back on"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				return a.dispatch(ctx, msg)
			})
		},
	}
	cmd.Flags().IntVar(&msg.ID, "id", 0, "Product to reactivate")
	cmd.Flags().StringVar(&msg.Reason, "reason", "", "Why the product is reactivated")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newVariantsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List registered command types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(_ context.Context, a *app) error {
				for _, v := range a.dispatcher.Variants() {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", appName, Version)
		},
	}
}
