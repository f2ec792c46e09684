package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	TargetFile     string        `json:"targetFile" yaml:"targetFile"`         // Default: metadata.rb
	SupportedEvent string        `json:"supportedEvent" yaml:"supportedEvent"` // Default: pull_request
	Backend        Backend       `json:"backend" yaml:"backend"`               // Default: cli
	Output         OutputConfig  `json:"output" yaml:"output"`
	Logging        LoggingConfig `json:"logging" yaml:"logging"`
}

// Backend selects how historical file contents are read.
type Backend string

const (
	// BackendCLI runs `git show`.
	BackendCLI Backend = "cli"
	// BackendGoGit reads the object database in-process.
	BackendGoGit Backend = "go-git"
)

// OutputConfig holds report output options.
type OutputConfig struct {
	Format  string `json:"format" yaml:"format"`   // console, json, markdown, ci
	Summary bool   `json:"summary" yaml:"summary"` // Append a markdown report to the step summary
}

// LoggingConfig holds diagnostic logging options.
type LoggingConfig struct {
	Debug bool `json:"debug" yaml:"debug"`
}

var validFormats = map[string]bool{"console": true, "json": true, "markdown": true, "md": true, "ci": true, "ndjson": true}

// configFileNames are searched in order when no path is given.
var configFileNames = []string{".versioncheck.json", ".versioncheck.yaml", ".versioncheck.yml"}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		TargetFile:     "metadata.rb",
		SupportedEvent: "pull_request",
		Backend:        BackendCLI,
		Output: OutputConfig{
			Format: "console",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TargetFile) == "" {
		return fmt.Errorf("targetFile must not be empty")
	}
	if strings.TrimSpace(c.SupportedEvent) == "" {
		return fmt.Errorf("supportedEvent must not be empty")
	}
	switch c.Backend {
	case BackendCLI, BackendGoGit:
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)", c.Backend, BackendCLI, BackendGoGit)
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
// When path is empty, the default file names are tried in dir.
func LoadConfig(dir, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		for _, name := range configFileNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
