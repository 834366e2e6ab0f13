package internal

import "context"

// Task is a single page reset: write Text to Page with Summary.
type Task struct {
	Page    string `yaml:"page"`
	Text    string `yaml:"text,omitempty"`
	Summary string `yaml:"summary,omitempty"`
}

// Batch is an ordered list of tasks sharing one automation script.
// Text and Summary are defaults for tasks that leave them empty.
type Batch struct {
	Name     string `yaml:"name"`
	Script   string `yaml:"script"`
	Schedule string `yaml:"schedule,omitempty"` // cron expression, used by serve
	Text     string `yaml:"text,omitempty"`
	Summary  string `yaml:"summary,omitempty"`
	Tasks    []Task `yaml:"tasks"`
}

// ResolvedTasks returns the tasks in batch order with batch-level
// Text/Summary filled into tasks that left them empty. The returned
// slice is a copy; the batch itself is never mutated.
func (b Batch) ResolvedTasks() []Task {
	out := make([]Task, len(b.Tasks))
	for i, t := range b.Tasks {
		if t.Text == "" {
			t.Text = b.Text
		}
		if t.Summary == "" {
			t.Summary = b.Summary
		}
		out[i] = t
	}
	return out
}

// Site selects the target wiki. Both fields optional; when empty the
// external tool falls back to its own user-config.
type Site struct {
	Family string `yaml:"family,omitempty"`
	Lang   string `yaml:"lang,omitempty"`
}

// Pwb locates the external editing tool.
type Pwb struct {
	Command string `yaml:"command"`
	Entry   string `yaml:"entry"`
}

type Config struct {
	Site    Site    `yaml:"site,omitempty"`
	Pwb     Pwb     `yaml:"pwb"`
	Batches []Batch `yaml:"batches"`
}

// Batch returns the named batch, or false when not configured.
func (c Config) Batch(name string) (Batch, bool) {
	for _, b := range c.Batches {
		if b.Name == name {
			return b, true
		}
	}
	return Batch{}, false
}

// Executor runs one task through the external editing tool and returns
// its combined output. The runner never branches on the error beyond
// recording it.
type Executor interface {
	Execute(ctx context.Context, script string, t Task) (string, error)
}
