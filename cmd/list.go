package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/masti01/pcms3/internal/loader"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print configured batches and their tasks",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loader.Load(cfgFile)
		if err != nil {
			logger.Fatal().Err(err).Str("config", cfgFile).Msg("loading batches config")
		}
		for _, b := range cfg.Batches {
			schedule := b.Schedule
			if schedule == "" {
				schedule = "-"
			}
			fmt.Printf("%s  (script: %s, schedule: %s)\n", b.Name, b.Script, schedule)
			for _, t := range b.ResolvedTasks() {
				fmt.Printf("  %s  [%s]\n", t.Page, t.Summary)
			}
		}
	},
}
