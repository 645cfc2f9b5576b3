package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Vilsol/memdbg/host"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hostCmd)
}

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Serve dumps of websocket frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signals)

		go func() {
			select {
			case <-signals:
				cancel()
			case <-ctx.Done():
			}
		}()

		return host.RunHost(ctx)
	},
}
