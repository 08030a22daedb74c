package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// duration decodes Go duration strings ("3s", "500ms") from YAML.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = duration(parsed)
	return nil
}

// fileConfig mirrors the CLI flags in a YAML config file. Flags set on the
// command line take precedence over file values.
type fileConfig struct {
	Domains       []string `yaml:"domains"`
	Selectors     []string `yaml:"selectors"`
	Types         []string `yaml:"types"`
	BestPractices bool     `yaml:"best_practices"`
	Nameservers   []string `yaml:"nameservers"`
	Timeout       duration `yaml:"timeout"`
	Concurrency   int      `yaml:"concurrency"`
	Format        string   `yaml:"format"`
	Output        string   `yaml:"output"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
