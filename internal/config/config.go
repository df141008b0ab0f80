package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the slotest.yml schema.
type Config struct {
	Version        string   `yaml:"version,omitempty"`
	Interpreter    string   `yaml:"interpreter,omitempty"`
	TestsDir       string   `yaml:"tests_dir,omitempty"`
	ScriptExt      string   `yaml:"script_ext,omitempty"`
	GoldenExt      string   `yaml:"golden_ext,omitempty"`
	Marker         string   `yaml:"marker,omitempty"`
	Workers        int      `yaml:"workers,omitempty"`
	CheckOutput    bool     `yaml:"check_output,omitempty"`
	Parallel       bool     `yaml:"parallel,omitempty"`
	ExpectedErrors []string `yaml:"expected_errors,omitempty"`
	Filters        []string `yaml:"filters,omitempty"`
}

// Default returns the configuration used when no slotest.yml is present.
func Default() *Config {
	return &Config{
		Interpreter: "./build/cslo",
		TestsDir:    "tests/slo",
		ScriptExt:   ".slo",
		GoldenExt:   ".out",
		Marker:      "# slo: exp error",
		Workers:     4,
	}
}

// Load reads and validates a slotest.yml, filling unset fields with the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validate(config *Config) error {
	if config.Interpreter == "" {
		return fmt.Errorf("missing required field: interpreter")
	}
	if config.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}
	if !strings.HasPrefix(config.ScriptExt, ".") {
		return fmt.Errorf("script_ext must start with '.', got %q", config.ScriptExt)
	}
	if !strings.HasPrefix(config.GoldenExt, ".") {
		return fmt.Errorf("golden_ext must start with '.', got %q", config.GoldenExt)
	}
	if config.ScriptExt == config.GoldenExt {
		return fmt.Errorf("script_ext and golden_ext must differ, both are %q", config.ScriptExt)
	}
	for i, name := range config.ExpectedErrors {
		if strings.ContainsAny(name, "/\\") {
			return fmt.Errorf("expected_errors entry %d must be a base filename, got %q", i, name)
		}
	}
	return nil
}
