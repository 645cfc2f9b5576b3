package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Vilsol/memdbg/client"
	"github.com/Vilsol/memdbg/host"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	sendCmd.Flags().Duration("timeout", 10*time.Second, "Time to wait for the host")

	_ = viper.BindPFlag("send.timeout", sendCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send [file]",
	Short: "Send a file or stdin to a memdbg host and print its dump",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "-"
		if len(args) > 0 {
			name = args[0]
		}

		data, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("send.timeout"))
		defer cancel()

		reply, err := client.Dump(ctx, host.Address(), data)
		if err != nil {
			return err
		}

		if reply != "" {
			fmt.Fprintln(cmd.OutOrStdout(), reply)
		}

		return nil
	},
}
