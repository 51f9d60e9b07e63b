package main

import (
	"fmt"

	"caza_backend/internal/bootstrap"

	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	var loop bool
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Send payment links to entities that never received one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				if loop {
					if c.Config.Sweep.Interval <= 0 {
						return fmt.Errorf("--loop needs SWEEP_INTERVAL > 0")
					}
					c.Sweep.Run(cmd.Context(), c.Config.Sweep.Interval)
					return nil
				}
				report, err := c.Sweep.RunOnce(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", report)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&loop, "loop", false, "keep sweeping every SWEEP_INTERVAL until interrupted")
	return cmd
}
