package executor

import (
	"context"
	"os/exec"
	"strings"

	"github.com/masti01/pcms3/internal"
)

// Pwb invokes the external pywikibot-style editing tool once per task.
// Authentication, page fetch and edit submission all live inside the
// tool; this side only assembles the command line.
type Pwb struct {
	Command string
	Entry   string
	Family  string
	Lang    string
}

func NewPwb(cfg internal.Config) *Pwb {
	return &Pwb{
		Command: cfg.Pwb.Command,
		Entry:   cfg.Pwb.Entry,
		Family:  cfg.Site.Family,
		Lang:    cfg.Site.Lang,
	}
}

// Args builds the argument list for one task. Page, text and summary
// pass through verbatim; exec does not go through a shell, so no
// quoting or escaping is applied.
func (e *Pwb) Args(script string, t internal.Task) []string {
	args := []string{e.Entry, script}
	if e.Family != "" {
		args = append(args, "-family:"+e.Family)
	}
	if e.Lang != "" {
		args = append(args, "-lang:"+e.Lang)
	}
	return append(args,
		"-page:"+t.Page,
		"-text:"+t.Text,
		"-summary:"+t.Summary,
		"-always",
	)
}

func (e *Pwb) Execute(ctx context.Context, script string, t internal.Task) (string, error) {
	cmd := exec.CommandContext(ctx, e.Command, e.Args(script, t)...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// DryRun renders the command line instead of executing it.
type DryRun struct {
	Pwb *Pwb
}

func (e *DryRun) Execute(_ context.Context, script string, t internal.Task) (string, error) {
	return e.Pwb.Command + " " + strings.Join(e.Pwb.Args(script, t), " "), nil
}
