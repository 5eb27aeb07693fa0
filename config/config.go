// Package config provides configuration loading for headerdoc.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete headerdoc configuration
type Config struct {
	Source SourceConfig  `yaml:"source"`
	Builds []BuildConfig `yaml:"builds"`
}

// SourceConfig configures where spec files are fetched from
type SourceConfig struct {
	// BaseURL is the spec file server prefix; names are appended as
	// <name>.spec
	BaseURL string `yaml:"base_url"`
	// Dir is a local directory of spec files; when set it takes
	// precedence over BaseURL
	Dir string `yaml:"dir"`
	// Timeout bounds a single spec file fetch
	Timeout time.Duration `yaml:"timeout"`
}

// BuildConfig describes one documentation build
type BuildConfig struct {
	// Name identifies the build
	Name string `yaml:"name"`
	// Files is the ordered list of spec file names to combine; later
	// files override earlier ones on key collision
	Files []string `yaml:"files"`
	// Output is the path of the LaTeX file the build writes
	Output string `yaml:"output"`
}

// DefaultConfig returns a Config with the stock documentation builds
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL: "https://lsst-camera-dev.slac.stanford.edu/RestFileServer/rest/version/download/misc/spec-files-combined/",
			Timeout: 30 * time.Second,
		},
		Builds: []BuildConfig{
			{
				Name: "lsstcam-primary",
				Files: []string{
					"primary-groups",
					"merged-primary",
					"lsstcam-primary",
					"header-service-primary",
					"filter",
				},
				Output: "lsstcam-primary.tex",
			},
			{
				Name: "auxtel-primary",
				Files: []string{
					"primary-groups",
					"merged-primary",
					"ats-primary",
					"header-service-primary",
					"ats-header-service-primary",
				},
				Output: "auxtel-primary.tex",
			},
			{
				Name:   "amplifier",
				Files:  []string{"extended"},
				Output: "amplifier.tex",
			},
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" && c.Source.Dir == "" {
		return fmt.Errorf("source.base_url or source.dir is required")
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative")
	}
	if len(c.Builds) == 0 {
		return fmt.Errorf("at least one build is required")
	}
	seen := make(map[string]bool)
	for i, b := range c.Builds {
		if b.Name == "" {
			return fmt.Errorf("builds[%d].name is required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate build name %q", b.Name)
		}
		seen[b.Name] = true
		if len(b.Files) == 0 {
			return fmt.Errorf("build %q has no spec files", b.Name)
		}
		if b.Output == "" {
			return fmt.Errorf("build %q has no output path", b.Name)
		}
	}
	return nil
}

// Build returns the build with the given name
func (c *Config) Build(name string) (BuildConfig, bool) {
	for _, b := range c.Builds {
		if b.Name == name {
			return b, true
		}
	}
	return BuildConfig{}, false
}

// LoadFromFile loads configuration from a YAML file, merged over the
// defaults. Environment variables referenced as $VAR or ${VAR} are expanded
// before parsing.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var overrides Config
	if err := yaml.Unmarshal([]byte(expanded), &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config := DefaultConfig()
	config.Merge(&overrides)
	return config, nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Source.BaseURL != "" {
		c.Source.BaseURL = other.Source.BaseURL
	}
	if other.Source.Dir != "" {
		c.Source.Dir = other.Source.Dir
	}
	if other.Source.Timeout != 0 {
		c.Source.Timeout = other.Source.Timeout
	}

	if len(other.Builds) > 0 {
		c.Builds = other.Builds
	}
}
