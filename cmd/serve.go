package cmd

import (
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpu-simulator/api"
	"cpu-simulator/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling simulations over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := api.NewApp(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logrus.Info("shutting down")
			if err := app.Shutdown(); err != nil {
				logrus.WithError(err).Error("shutdown failed")
			}
		}()

		logrus.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"quantum": cfg.RoundRobinTimeQuantum,
		}).Info("scheduler service listening")
		if err := app.Listen(cfg.Addr()); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 9095, "Port to listen on")
	_ = viper.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
}
