package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config mirrors the command-line options so CI setups can keep the
// validation layout in one file.
type config struct {
	SchemaDir      string   `yaml:"schema-dir"`
	ResourceDirs   []string `yaml:"resource-dirs"`
	ExcludeDirs    []string `yaml:"exclude-dirs"`
	InterfaceFiles []string `yaml:"interface-files"`
}

func loadConfig(path string) (config, error) {
	var c config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}
