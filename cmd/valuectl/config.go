package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds valuectl's on-disk defaults, loaded from a YAML dotfile so
// repeated conversions don't need every flag spelled out each time.
type config struct {
	DefaultFormat string `yaml:"default_format"`
	Strict        bool   `yaml:"strict"`
	Source        string `yaml:"source"`
}

func defaultConfig() config {
	return config{DefaultFormat: "textual"}
}

// loadConfig reads path (or .valuectl.yaml in the working directory if
// path is empty) and merges it over the defaults. A missing default
// dotfile is not an error; an explicitly named missing file is.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if path == "" {
		path = ".valuectl.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return config{}, fmt.Errorf("valuectl: read config %s: %w", path, err)
	}

	c := defaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return config{}, fmt.Errorf("valuectl: parse config %s: %w", path, err)
	}
	return c, nil
}
