// Package config loads optional project-level defaults for the boxx
// CLI from a .boxxrc.yaml file, the way a project pins flags it wants
// applied on every invocation without retyping them.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the subset of CLI flags that can be pinned per project.
type Config struct {
	MaxIterations int    `yaml:"max_iterations"`
	TraceFile     string `yaml:"trace_file"`
	Color         *bool  `yaml:"color"`
}

// Default returns a Config with the same values the CLI flags default
// to when no .boxxrc.yaml is present.
func Default() Config {
	return Config{MaxIterations: 1_000_000_000}
}

// Load reads and merges path onto Default(). A missing file is not an
// error, it just means no overrides apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UseColor reports whether colorized error/REPL output should be used,
// honoring an explicit Color override or defaulting to true.
func (c Config) UseColor() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}
