package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/masti01/pcms3/internal/util"
)

var (
	cfgFile  string
	logLevel string
	dryRun   bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pcms3",
	Short: "Maintenance batches for pl.wikipedia sandbox pages",
	Long: `pcms3 resets the help sandbox pages (brudnopisy) to their
subpage-transclusion placeholder by invoking the external pywikibot
tool once per page. Batches come from batches.yaml; without one the
built-in sandbox batch is used.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = util.NewLogger(logLevel)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "batches.yaml", "Batches YAML file (embedded defaults when absent)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace/debug/info/warn/error)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the tool command per task instead of executing it")
}
