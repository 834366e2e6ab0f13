package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/spf13/cobra"

	"github.com/masti01/pcms3/internal"
	"github.com/masti01/pcms3/internal/loader"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run scheduled batches on their cron expressions until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loader.Load(cfgFile)
		if err != nil {
			logger.Fatal().Err(err).Str("config", cfgFile).Msg("loading batches config")
		}

		s := gocron.NewScheduler(time.Local)
		scheduled := 0
		for _, b := range cfg.Batches {
			if b.Schedule == "" {
				continue
			}
			b := b
			_, err := s.Cron(b.Schedule).Do(func() {
				if err := runBatches(context.Background(), cfg, []internal.Batch{b}); err != nil {
					logger.Error().Err(err).Str("batch", b.Name).Msg("scheduled run failed")
				}
			})
			if err != nil {
				logger.Fatal().Err(err).Str("batch", b.Name).Str("schedule", b.Schedule).Msg("registering schedule")
			}
			logger.Info().Str("batch", b.Name).Str("schedule", b.Schedule).Msg("batch scheduled")
			scheduled++
		}
		if scheduled == 0 {
			logger.Fatal().Msg("no batch has a schedule; nothing to serve")
		}

		s.StartAsync()
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logger.Info().Msg("shutting down")
		s.Stop()
	},
}
