// Package config loads the optional sheet.yaml tuning profile and resolves
// project metadata for the sheetsim CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional sheet.yaml configuration.
type Config struct {
	Tuning TuningConfig `yaml:"tuning"`
}

// TuningConfig holds the snap tuning constants. Zero values select the
// library defaults.
type TuningConfig struct {
	// VelocityThreshold is the directional-snap cutoff in px/s.
	VelocityThreshold float64 `yaml:"velocity_threshold,omitempty"`
	// VelocityDamping weights release velocity in the rest projection.
	VelocityDamping float64 `yaml:"velocity_damping,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Tuning     TuningConfig
}

// LoadOptional reads sheet.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "sheet.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read sheet.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sheet.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads sheet.yaml (if present) from the project root.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Tuning:     cfg.Tuning,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	path := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	mod := modfile.ModulePath(data)
	if mod == "" {
		return "", fmt.Errorf("failed to determine module path from %s", path)
	}
	return strings.TrimSpace(mod), nil
}
