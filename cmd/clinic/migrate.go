package main

import (
	"context"
	"fmt"

	"clinic/internal/domain/lifecycle"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				injectInfra(),
				fx.Invoke(migrateOnStart),
				fx.NopLogger,
			)
			if err := app.Err(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*lifecycle.DefaultTimeout)
			defer cancel()

			if err := app.Start(ctx); err != nil {
				return err
			}
			if err := app.Stop(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations executed successfully.")

			return nil
		},
	}
}
