// Package config handles loading and saving user configuration for the
// solresol tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Audio holds synthesis defaults for the play command.
type Audio struct {
	SampleRate    int     `yaml:"sample_rate"`
	NoteLen       float64 `yaml:"note_len"`       // seconds per symbol
	Amplitude     float64 `yaml:"amplitude"`      // 0..1
	EnvelopeRatio float64 `yaml:"envelope_ratio"` // attack/decay fraction per note
	GapRatio      float64 `yaml:"gap_ratio"`      // inter-word silence in note lengths
	Octave        int     `yaml:"octave"`
}

// Render holds glyph drawing defaults for the draw command.
type Render struct {
	Color  string  `yaml:"color"`  // SVG color name or #rrggbb
	Weight float64 `yaml:"weight"` // stroke width in glyph units
	Scale  float64 `yaml:"scale"`  // pixels per glyph unit
}

// Config holds all user configuration.
type Config struct {
	Audio      Audio  `yaml:"audio"`
	Render     Render `yaml:"render"`
	Dictionary string `yaml:"dictionary"` // path to a .json or .db dictionary
}

// Default returns the configuration written by `solresol init`.
func Default() Config {
	return Config{
		Audio: Audio{
			SampleRate:    44100,
			NoteLen:       0.2,
			Amplitude:     1,
			EnvelopeRatio: 0.2,
			GapRatio:      1,
			Octave:        4,
		},
		Render: Render{
			Color:  "black",
			Weight: 0.06,
			Scale:  48,
		},
	}
}

// Load reads a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// Save writes a config file.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "solresol"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
