package config

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// Output formats accepted by output.format
var validFormats = map[string]bool{
	"auto": true, "term": true, "text": true, "json": true, "yaml": true, "xml": true,
}

// Roots holds the two directory trees being linked
type Roots struct {
	Project string `koanf:"project" toml:"project"`
	Shared  string `koanf:"shared" toml:"shared"`
}

// Log holds logging settings
type Log struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity"`
	File      bool `koanf:"file" toml:"file"`
}

// Output holds rendering settings
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Sync holds synchronization settings
type Sync struct {
	DryRun bool `koanf:"dryrun" toml:"dryrun"`
}

// Config is the main configuration structure
type Config struct {
	Roots  Roots  `koanf:"roots" toml:"roots"`
	Log    Log    `koanf:"log" toml:"log"`
	Output Output `koanf:"output" toml:"output"`
	Sync   Sync   `koanf:"sync" toml:"sync"`

	// Sources lists the configuration files that were loaded, in load order
	Sources []string `koanf:"-" toml:"-"`
}

// Default returns the default configuration
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipFiles: true, SkipEnv: true})
	if err != nil {
		// Fallback to minimal config if the embedded defaults are unusable
		return &Config{
			Roots:  Roots{Shared: paths.DefaultSharedRoot},
			Log:    Log{File: true},
			Output: Output{Format: "auto"},
		}
	}
	return cfg
}

// Validate checks values that decoding cannot
func (c *Config) Validate() error {
	if c.Roots.Shared == "" {
		return errors.New(errors.ErrInvalidInput, "roots.shared cannot be empty")
	}
	if err := paths.ValidatePath(c.Roots.Shared); err != nil {
		return err
	}
	if c.Roots.Project != "" {
		if err := paths.ValidatePath(c.Roots.Project); err != nil {
			return err
		}
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrInvalidInput, "log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}
	if !validFormats[c.Output.Format] {
		return errors.Newf(errors.ErrInvalidInput, "unknown output.format: %s", c.Output.Format)
	}
	return nil
}

// ProjectRoot returns the configured project root, defaulting to the working directory
func (c *Config) ProjectRoot() (string, error) {
	if c.Roots.Project != "" {
		return c.Roots.Project, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to determine working directory")
	}
	return wd, nil
}

// TOML renders the effective configuration
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
