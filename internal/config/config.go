// Package config handles loading and saving user configuration for the
// josa CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/josa"
)

// ParticleSpec describes one user-defined particle in a catalog file.
type ParticleSpec struct {
	Morph1 string `yaml:"morph1"`           // allomorph after a consonant
	Morph2 string `yaml:"morph2,omitempty"` // allomorph after a vowel; defaults to morph1
	Final  bool   `yaml:"final,omitempty"`  // disallows a further suffix
}

// Config holds all user configuration for josa.
type Config struct {
	// ToleranceStyle selects the bracketed spelling used when a coda
	// cannot be determined: an index 0-3 or an example such as "(은)는".
	ToleranceStyle string `yaml:"tolerance_style,omitempty"`

	// Particles are merged after the well-known catalog.
	Particles []ParticleSpec `yaml:"particles,omitempty"`
}

// Load reads configuration from a YAML file. A missing file yields an
// empty configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// LoadDir loads config.yaml from a configuration directory.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, "config.yaml"))
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Registry builds the particle registry described by the
// configuration: the well-known catalog followed by any user-defined
// particles.
func (c *Config) Registry() (*josa.Registry, error) {
	catalog := josa.DefaultCatalog()
	for _, spec := range c.Particles {
		if spec.Morph1 == "" && spec.Morph2 == "" {
			return nil, fmt.Errorf("custom particle needs at least one morph")
		}
		morph2 := spec.Morph2
		if morph2 == "" {
			morph2 = spec.Morph1
		}
		catalog = append(catalog, josa.NewParticle(spec.Morph1, morph2, spec.Final))
	}
	return josa.NewRegistry(josa.Ida, catalog), nil
}

// Style resolves the configured tolerance style against a registry.
// An invalid style is a configuration error, reported here rather than
// per call.
func (c *Config) Style(registry *josa.Registry) (josa.ToleranceStyle, error) {
	if c.ToleranceStyle == "" {
		return josa.DefaultToleranceStyle, nil
	}
	if n, err := strconv.Atoi(c.ToleranceStyle); err == nil {
		if n < 0 || n > 3 {
			return 0, fmt.Errorf("tolerance style index out of range: %d", n)
		}
		return josa.ToleranceStyle(n), nil
	}
	style, err := josa.ParseToleranceStyle(c.ToleranceStyle, registry)
	if err != nil {
		return 0, fmt.Errorf("tolerance style: %w", err)
	}
	return style, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "josa"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
