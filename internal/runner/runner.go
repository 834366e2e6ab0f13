package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/masti01/pcms3/internal"
)

// Result records one task invocation.
type Result struct {
	Page     string        `yaml:"page"`
	Status   string        `yaml:"status"` // done | fail
	Duration time.Duration `yaml:"duration"`
	Error    string        `yaml:"error,omitempty"`
}

// Summary records one batch run.
type Summary struct {
	Batch     string    `yaml:"batch"`
	Status    string    `yaml:"status"` // success | fail
	Timestamp time.Time `yaml:"timestamp"`
	Results   []Result  `yaml:"results"`
}

// Runner executes a batch strictly in order, one external invocation
// at a time. A failing task is recorded and logged, then the loop
// moves on: no retry, no abort. When RunDir is set, each task's
// combined output lands in RunDir/outputs.
type Runner struct {
	Exec   internal.Executor
	Log    zerolog.Logger
	RunDir string
}

func (r *Runner) Run(ctx context.Context, b internal.Batch) Summary {
	sum := Summary{
		Batch:     b.Name,
		Status:    "success",
		Timestamp: time.Now(),
	}
	for _, t := range b.ResolvedTasks() {
		r.Log.Info().Str("batch", b.Name).Str("page", t.Page).Msg("resetting page")
		start := time.Now()
		out, err := r.Exec.Execute(ctx, b.Script, t)
		elapsed := time.Since(start)

		res := Result{Page: t.Page, Status: "done", Duration: elapsed}
		if err != nil {
			res.Status = "fail"
			res.Error = err.Error()
			sum.Status = "fail"
			r.Log.Error().Err(err).Str("page", t.Page).Dur("elapsed", elapsed).Msg("edit failed")
		} else {
			r.Log.Info().Str("page", t.Page).Dur("elapsed", elapsed).Msg("done")
		}
		sum.Results = append(sum.Results, res)

		if r.RunDir != "" {
			fpath := filepath.Join(r.RunDir, "outputs", slug(t.Page)+".log")
			if werr := os.WriteFile(fpath, []byte(out), 0644); werr != nil {
				r.Log.Warn().Err(werr).Str("page", t.Page).Msg("saving task output")
			}
		}
	}
	return sum
}

// WriteSummary saves the run summaries as run.yaml inside runDir.
func WriteSummary(runDir string, sums []Summary) error {
	f, err := os.Create(filepath.Join(runDir, "run.yaml"))
	if err != nil {
		return err
	}
	defer f.Close()
	return yaml.NewEncoder(f).Encode(sums)
}

// slug turns a page title into a filename-safe token.
func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
}
