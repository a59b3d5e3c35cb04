package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// demoConfig carries the demo parameters. Flags populate it first; a
// YAML file given via --config overrides whichever keys it sets.
type demoConfig struct {
	Input         string  `yaml:"input"`
	Out           string  `yaml:"out"`
	Atoms         int     `yaml:"atoms"`
	Sparsity      float64 `yaml:"sparsity"`
	MaxIters      int     `yaml:"max_iters"`
	MaxInnerIters int     `yaml:"max_inner_iters"`
	Dims          int     `yaml:"dims"`
	Samples       int     `yaml:"samples"`
	Seed          uint64  `yaml:"seed"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		Atoms:         64,
		Sparsity:      0.1,
		MaxIters:      50,
		MaxInnerIters: 10,
		Dims:          64,
		Samples:       500,
	}
}

// loadDemoConfig merges the YAML file at path into cfg. Keys absent
// from the file keep their current values.
func loadDemoConfig(path string, cfg *demoConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
