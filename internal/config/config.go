// Package config reads viewer settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/panzoom"
)

// DefaultPath is the file name the CLI looks for when --config is not set.
const DefaultPath = "panzoom.yaml"

// File is the on-disk form of panzoom.Config. Durations are written as Go
// duration strings ("166ms"). Nil fields were absent from the file.
type File struct {
	MaxScale        *float64 `yaml:"maxScale,omitempty"`
	MomentumPower   *float64 `yaml:"momentumPower,omitempty"`
	BoundsDuration  string   `yaml:"boundsDuration,omitempty"`
	PanDuration     string   `yaml:"panDuration,omitempty"`
	ScrollDuration  string   `yaml:"scrollDuration,omitempty"`
	UseConstraint   *bool    `yaml:"useConstraint,omitempty"`
	EaseOutOfBounds *bool    `yaml:"easeOutOfBounds,omitempty"`
	Debug           *bool    `yaml:"debug,omitempty"`
}

// Load reads the YAML file at path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (panzoom.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return panzoom.DefaultConfig(), nil
	}
	if err != nil {
		return panzoom.Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data into a validated Config.
func Parse(data []byte) (panzoom.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return panzoom.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg, err := applyDefaults(&f)
	if err != nil {
		return panzoom.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return panzoom.Config{}, err
	}
	return cfg, nil
}

// applyDefaults merges f over panzoom.DefaultConfig.
func applyDefaults(f *File) (panzoom.Config, error) {
	cfg := panzoom.DefaultConfig()

	if f.MaxScale != nil {
		cfg.MaxScale = *f.MaxScale
	}
	if f.MomentumPower != nil {
		cfg.MomentumPower = *f.MomentumPower
	}
	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"boundsDuration", f.BoundsDuration, &cfg.BoundsDuration},
		{"panDuration", f.PanDuration, &cfg.PanDuration},
		{"scrollDuration", f.ScrollDuration, &cfg.ScrollDuration},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return panzoom.Config{}, fmt.Errorf("%w: %s: %v", panzoom.ErrInvalidConfig, d.name, err)
		}
		*d.dst = v
	}
	if f.UseConstraint != nil {
		cfg.UseConstraint = *f.UseConstraint
	}
	if f.EaseOutOfBounds != nil {
		cfg.EaseOutOfBounds = *f.EaseOutOfBounds
	}
	if f.Debug != nil {
		cfg.Debug = *f.Debug
	}
	return cfg, nil
}

// FromConfig returns the on-disk form of cfg with every field set.
func FromConfig(cfg panzoom.Config) File {
	return File{
		MaxScale:        &cfg.MaxScale,
		MomentumPower:   &cfg.MomentumPower,
		BoundsDuration:  cfg.BoundsDuration.String(),
		PanDuration:     cfg.PanDuration.String(),
		ScrollDuration:  cfg.ScrollDuration.String(),
		UseConstraint:   &cfg.UseConstraint,
		EaseOutOfBounds: &cfg.EaseOutOfBounds,
		Debug:           &cfg.Debug,
	}
}

// Marshal encodes cfg as YAML.
func Marshal(cfg panzoom.Config) ([]byte, error) {
	f := FromConfig(cfg)
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path as YAML.
func Save(cfg panzoom.Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
