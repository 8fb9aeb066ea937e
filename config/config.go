package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for depstatus. Every field has a
// working default; a config file is optional.
type Config struct {
	ReadmePath string `yaml:"readme_path"` // Document to keep in sync
	ReportsDir string `yaml:"reports_dir"` // Directory for JSON reports
	PoetryBin  string `yaml:"poetry_bin"`  // Poetry executable
	PipBin     string `yaml:"pip_bin"`     // Pip executable
	ProjectDir string `yaml:"project_dir"` // Directory the tools run in
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		ReadmePath: "README.md",
		ReportsDir: filepath.Join("reports", "dependencies"),
		PoetryBin:  "poetry",
		PipBin:     "pip",
		ProjectDir: ".",
	}
}

// Load reads and parses a configuration file, filling unset fields with
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depstatus.yaml",
		".depstatus.yml",
		"depstatus.yaml",
		"depstatus.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.ReadmePath == "" {
		return errors.New("readme_path must not be empty")
	}
	if cfg.ReportsDir == "" {
		return errors.New("reports_dir must not be empty")
	}
	if cfg.PoetryBin == "" {
		return errors.New("poetry_bin must not be empty")
	}
	if cfg.PipBin == "" {
		return errors.New("pip_bin must not be empty")
	}
	if cfg.ProjectDir == "" {
		return errors.New("project_dir must not be empty")
	}

	return nil
}
