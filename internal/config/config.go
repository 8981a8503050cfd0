// Package config loads .loclens.yml: default values for CLI flags
// that the command line always overrides when set explicitly.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunConfig is the shape of .loclens.yml.
type RunConfig struct {
	Exclude       []string `yaml:"exclude,omitempty"`
	IncludeExt    []string `yaml:"include_ext,omitempty"`
	ExcludeExt    []string `yaml:"exclude_ext,omitempty"`
	Format        string   `yaml:"format,omitempty"`
	Threads       int      `yaml:"threads,omitempty"`
	RulesFile     string   `yaml:"rules_file,omitempty"`
	SkipGenerated bool     `yaml:"skip_generated,omitempty"`
}

// Load reads .loclens.yml from root. A missing file is not an error;
// it returns a zero-value RunConfig.
func Load(root string) (*RunConfig, error) {
	path := filepath.Join(root, ".loclens.yml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &RunConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MergeExcludes merges config-file excludes with CLI excludes,
// deduplicating; CLI excludes are listed after config excludes but
// either source can supply the same pattern without producing
// duplicates in the final set.
func (c *RunConfig) MergeExcludes(cliExcludes []string) []string {
	if c == nil {
		return cliExcludes
	}
	seen := map[string]struct{}{}
	var out []string
	for _, e := range append(append([]string{}, c.Exclude...), cliExcludes...) {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
