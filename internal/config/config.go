// Package config loads conversion settings from an optional YAML file.
//
// Settings are resolved in three layers: built-in defaults, then the file,
// then command line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"svg2svelte/internal/diagnostic"
	"svg2svelte/internal/logger"
	"svg2svelte/internal/naming"
)

// DefaultFileName is looked up in the input directory when no file is given.
const DefaultFileName = ".svg2svelte.yaml"

const currentVersion = "1"

// Config holds every setting of a conversion run.
type Config struct {
	// Version is the config file format version.
	Version string `yaml:"version"`
	// IncludeClass keeps the root class attribute as a className prop.
	IncludeClass bool `yaml:"include_class"`
	// OutputDir receives the components. Empty means next to the input.
	OutputDir string `yaml:"output_dir,omitempty"`
	// Recursive descends into sub-directories and mirrors them in the output.
	Recursive bool `yaml:"recursive"`
	// Jobs bounds the number of files converted in parallel.
	Jobs int `yaml:"jobs"`
	// Extension is appended to generated component names.
	Extension string `yaml:"extension"`
	// Exclude lists glob patterns, relative to the input directory, of files to skip.
	Exclude []string `yaml:"exclude,omitempty"`
	// LogLevel is one of debug, info, warn, error, disabled.
	LogLevel string `yaml:"log_level"`
	// LogJSON switches log output to JSON lines.
	LogJSON bool `yaml:"log_json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// Find returns the path of the default config file in dir, or "" when
// there is none.
func Find(fsys afero.Fs, dir string) (string, error) {
	path := filepath.Join(dir, DefaultFileName)

	_, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	return path, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = currentVersion
	}

	if c.Jobs == 0 {
		c.Jobs = runtime.NumCPU()
	}

	if c.Extension == "" {
		c.Extension = naming.ComponentExt
	}

	if c.LogLevel == "" {
		c.LogLevel = logger.InfoLevel.String()
	}
}

// Validate reports every invalid setting.
func Validate(c *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "config is nil", "", "")
		return res
	}

	if c.Version != currentVersion {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("unsupported version %q", c.Version), "", "version")
	}

	if c.Jobs < 1 {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("jobs must be at least 1, got %d", c.Jobs), "", "jobs")
	}

	if !strings.HasPrefix(c.Extension, ".") || strings.ContainsAny(c.Extension, `/\`) {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("extension %q must start with a dot and contain no path separator", c.Extension),
			"", "extension")
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			res.AddError(diagnostic.CodeInvalidConfig,
				fmt.Sprintf("invalid exclude pattern %q", pattern), "", "exclude")
		}
	}

	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("unknown log level %q", c.LogLevel), "", "log_level")
	}

	return res
}
