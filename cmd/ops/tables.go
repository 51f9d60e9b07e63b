package main

import (
	"fmt"

	"caza_backend/internal/bootstrap"

	"github.com/spf13/cobra"
)

func createTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-tables",
		Short: "Create the payment ledger and sent-action tables of the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				if err := c.Migrate(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tables ready (%s)\n", c.Config.Ledger.Backend)
				return nil
			})
		},
	}
}
