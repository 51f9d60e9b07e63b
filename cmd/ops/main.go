// Command ops runs one-off maintenance tasks against the same stores the API uses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"caza_backend/internal/bootstrap"
	"caza_backend/internal/config"
	"caza_backend/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "caza-ops",
		Short:         "Maintenance commands for the caza backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(backfillCmd())
	rootCmd.AddCommand(createTablesCmd())
	rootCmd.AddCommand(sweepCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// withContainer loads configuration, wires the stores and runs fn.
func withContainer(ctx context.Context, fn func(*bootstrap.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init("caza-ops", "text", cfg.App.LogLevel)

	c, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
