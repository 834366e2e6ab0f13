package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/masti01/pcms3/internal"
	"github.com/masti01/pcms3/internal/executor"
	"github.com/masti01/pcms3/internal/loader"
	"github.com/masti01/pcms3/internal/runner"
	"github.com/masti01/pcms3/internal/util"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [batch...]",
	Short: "Run the named batches once (all batches when none named)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loader.Load(cfgFile)
		if err != nil {
			logger.Fatal().Err(err).Str("config", cfgFile).Msg("loading batches config")
		}
		batches, err := selectBatches(cfg, args)
		if err != nil {
			logger.Fatal().Err(err).Msg("selecting batches")
		}
		if err := runBatches(cmd.Context(), cfg, batches); err != nil {
			logger.Fatal().Err(err).Msg("run failed")
		}
	},
}

func selectBatches(cfg internal.Config, names []string) ([]internal.Batch, error) {
	if len(names) == 0 {
		return cfg.Batches, nil
	}
	var out []internal.Batch
	for _, name := range names {
		b, ok := cfg.Batch(name)
		if !ok {
			return nil, fmt.Errorf("batch %q not configured", name)
		}
		out = append(out, b)
	}
	return out, nil
}

func newExecutor(cfg internal.Config) internal.Executor {
	pwb := executor.NewPwb(cfg)
	if dryRun {
		return &executor.DryRun{Pwb: pwb}
	}
	return pwb
}

// runBatches makes a run-<uuid> directory, attaches the run log file,
// then runs each batch strictly in order. Per-task failures never
// abort the run; only setup errors are returned.
func runBatches(ctx context.Context, cfg internal.Config, batches []internal.Batch) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runDir := "run-" + uuid.NewString()
	if err := os.MkdirAll(filepath.Join(runDir, "outputs"), 0755); err != nil {
		return err
	}
	runLog, logFile, err := util.WithRunFile(logger, filepath.Join(runDir, "log.txt"))
	if err != nil {
		return err
	}
	defer logFile.Close()
	runLog.Info().Str("dir", runDir).Int("batches", len(batches)).Msg("run started")

	r := &runner.Runner{
		Exec:   newExecutor(cfg),
		Log:    runLog,
		RunDir: runDir,
	}
	var sums []runner.Summary
	for _, b := range batches {
		sums = append(sums, r.Run(ctx, b))
	}
	if err := runner.WriteSummary(runDir, sums); err != nil {
		return err
	}
	runLog.Info().Str("dir", runDir).Msg("run finished")
	return nil
}
