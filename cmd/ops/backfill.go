package main

import (
	"errors"
	"fmt"

	"caza_backend/internal/bootstrap"
	"caza_backend/internal/usecase"

	"github.com/spf13/cobra"
)

func backfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill <payment-id>...",
		Short: "Fetch payments from Mercado Pago and store the missing ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				failed := 0
				for _, id := range args {
					rec, err := c.Reconciliation.FetchAndStore(cmd.Context(), id)
					switch {
					case errors.Is(err, usecase.ErrPaymentAlreadyExists):
						fmt.Fprintf(cmd.OutOrStdout(), "%s\talready_exists\t%s\n", id, rec.EntityID)
					case err != nil:
						failed++
						fmt.Fprintf(cmd.OutOrStdout(), "%s\tfailed\t%v\n", id, err)
					default:
						fmt.Fprintf(cmd.OutOrStdout(), "%s\tstored\t%s\t%s\n", id, rec.EntityID, rec.Status)
					}
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d payments failed", failed, len(args))
				}
				return nil
			})
		},
	}
}
