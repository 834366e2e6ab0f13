package loader

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/masti01/pcms3/internal"
)

//go:embed batches.yaml
var defaultConfig []byte

// Load reads the batches config from path. When the file does not
// exist the embedded default config is used, so the binary works with
// no files next to it.
func Load(path string) (internal.Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return parse(defaultConfig)
	}
	if err != nil {
		return internal.Config{}, err
	}
	return parse(b)
}

// Default returns the embedded config.
func Default() (internal.Config, error) {
	return parse(defaultConfig)
}

func parse(b []byte) (internal.Config, error) {
	var cfg internal.Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return internal.Config{}, fmt.Errorf("parsing batches config: %w", err)
	}
	if len(cfg.Batches) == 0 {
		return internal.Config{}, fmt.Errorf("batches config defines no batches")
	}
	for _, batch := range cfg.Batches {
		if batch.Name == "" {
			return internal.Config{}, fmt.Errorf("batch without a name")
		}
		if len(batch.Tasks) == 0 {
			return internal.Config{}, fmt.Errorf("batch %q has no tasks", batch.Name)
		}
	}
	return cfg, nil
}
