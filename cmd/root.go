package cmd

import (
	"os"

	"github.com/Vilsol/memdbg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "memdbg",
	Short: "memdbg renders bytes as a hex and ascii memory dump",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(viper.GetString("log.level"))
		if err != nil {
			return err
		}

		log.SetFormatter(&log.TextFormatter{
			ForceColors: viper.GetBool("log.colors"),
		})
		log.SetOutput(os.Stderr)
		log.SetLevel(level)

		return nil
	},
}

func Execute() {
	// Execute dump command as default
	cmd, _, err := rootCmd.Find(os.Args[1:])
	if (len(os.Args) <= 1 || os.Args[1] != "help") && (err != nil || cmd == rootCmd) {
		args := append([]string{"dump"}, os.Args[1:]...)
		rootCmd.SetArgs(args)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var cfgFile string

func init() {
	cobra.OnInitialize(func() {
		config.InitializeConfig(cfgFile)
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file")
	rootCmd.PersistentFlags().String("log", "info", "The log level to output")
	rootCmd.PersistentFlags().Bool("colors", true, "Log output with colors")
	rootCmd.PersistentFlags().String("host", "127.0.0.1", "Websocket host")
	rootCmd.PersistentFlags().Int("port", 56218, "Websocket port")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log"))
	_ = viper.BindPFlag("log.colors", rootCmd.PersistentFlags().Lookup("colors"))
	_ = viper.BindPFlag("socket.host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("socket.port", rootCmd.PersistentFlags().Lookup("port"))
}
