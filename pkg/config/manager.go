package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ducln05/futures-risk-replay/internal/simulation"
)

// Profile is one named risk-policy configuration as persisted on disk.
// It wraps the engine params union with presentation metadata.
type Profile struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Params      simulation.Params `json:"params" yaml:"params"`
}

// Manager loads and validates risk profiles from JSON or YAML files.
type Manager struct{}

// NewManager creates a new profile configuration manager.
func NewManager() *Manager {
	return &Manager{}
}

// LoadProfile reads a profile file, decoding by extension (.json, .yaml,
// .yml) and validating the engine params before returning. Malformed
// configuration is rejected here, never during the per-trade walk.
func (m *Manager) LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile file: %w", err)
	}

	var profile Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &profile); err != nil {
			return nil, fmt.Errorf("could not parse YAML profile: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, fmt.Errorf("could not parse JSON profile: %w", err)
		}
	default:
		// No extension hint: try JSON first, then YAML.
		if jsonErr := json.Unmarshal(raw, &profile); jsonErr != nil {
			if yamlErr := yaml.Unmarshal(raw, &profile); yamlErr != nil {
				return nil, fmt.Errorf("could not parse profile as JSON (%v) or YAML: %w", jsonErr, yamlErr)
			}
		}
	}

	if profile.Name == "" {
		profile.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := profile.Params.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", profile.Name, err)
	}
	return &profile, nil
}

// SaveProfile writes a profile as indented JSON, creating the directory if
// needed.
func (m *Manager) SaveProfile(profile *Profile, path string) error {
	if err := profile.Params.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", profile.Name, err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create profile directory: %w", err)
		}
	}
	raw, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode profile: %w", err)
	}
	return os.WriteFile(path, raw, 0644)
}
