package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpu-simulator/config"
)

var (
	configPath string // Optional explicit config file
	cfg        *config.SchedulerConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "cpu-simulator",
	Short:         "Simulate FCFS, SJF, Priority and Round Robin CPU scheduling",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(viper.GetViper(), configPath)
		if err != nil {
			return err
		}
		if err := loaded.ConfigureLogging(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./config.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd, simulateCmd, demoCmd)
}
