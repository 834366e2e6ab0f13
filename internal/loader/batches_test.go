package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sandboxPages = []string{
	"Pomoc:Krok pierwszy - edytowanie",
	"Pomoc:Krok drugi - formatowanie",
	"Pomoc:Krok trzeci - linki",
	"Pomoc:Krok czwarty - grafiki",
	"Pomoc:Krok piąty - szablony",
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "wikipedia", cfg.Site.Family)
	assert.Equal(t, "pl", cfg.Site.Lang)
	assert.Equal(t, "python3", cfg.Pwb.Command)
	assert.Equal(t, "pwb.py", cfg.Pwb.Entry)

	require.Len(t, cfg.Batches, 1)
	b := cfg.Batches[0]
	assert.Equal(t, "sandbox", b.Name)
	assert.Equal(t, "settext", b.Script)
	assert.NotEmpty(t, b.Schedule)

	tasks := b.ResolvedTasks()
	require.Len(t, tasks, 5)
	for i, task := range tasks {
		assert.Equal(t, sandboxPages[i], task.Page)
		assert.Equal(t, "{{/podstrona}}", task.Text)
		assert.Equal(t, "resetowanie brudnopisu", task.Summary)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pwb:
  command: python3
  entry: /home/masti/pw/core/pwb.py
batches:
  - name: sandbox
    script: settext
    text: "{{/podstrona}}"
    summary: resetowanie brudnopisu
    tasks:
      - page: "Pomoc:Krok pierwszy - edytowanie"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/home/masti/pw/core/pwb.py", cfg.Pwb.Entry)
	assert.Empty(t, cfg.Site.Family)
	require.Len(t, cfg.Batches, 1)
	assert.Equal(t, "Pomoc:Krok pierwszy - edytowanie", cfg.Batches[0].Tasks[0].Page)
}

func TestLoadRejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "{{nope"},
		{name: "no batches", yaml: "pwb: {command: python3, entry: pwb.py}"},
		{name: "batch without name", yaml: "batches: [{script: settext, tasks: [{page: X}]}]"},
		{name: "batch without tasks", yaml: "batches: [{name: sandbox, script: settext}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "batches.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
