package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/calsum/internal/files/filesystem"
	"github.com/vvka-141/calsum/internal/report"
	"github.com/vvka-141/calsum/pkg/calsum"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the content of calsum.yaml.
type ProjectConfig struct {
	Input   string `yaml:"input,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

const ConfigFileName = calsum.ConfigFileName

// LoadFrom reads calsum.yaml from dir through provider.
func LoadFrom(provider filesystem.FileSystemProvider, dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := provider.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks that every set field holds a usable value.
func (c *ProjectConfig) Validate() error {
	if c.Format != "" {
		if _, err := report.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("format %q: %w", c.Format, calsum.ErrInvalidConfig)
		}
	}
	return nil
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. Missing files are ignored.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ApplyEnv overlays CALSUM_* environment variables onto c.
// Environment values take precedence over calsum.yaml.
func (c *ProjectConfig) ApplyEnv() error {
	if v := os.Getenv(calsum.EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(calsum.EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(calsum.EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not a boolean: %w", calsum.EnvVerbose, v, calsum.ErrInvalidConfig)
		}
		c.Verbose = verbose
	}
	return nil
}
