package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file name looked up in the search directories.
const FileName = "skyland.yaml"

// Load loads Skyland tuning.
// Search order: customPath -> ~/.skyland/skyland.yaml -> ./configs/skyland.yaml -> embedded default.
// Only an explicit customPath can fail; broken files elsewhere are skipped.
// The returned config has been validated.
func Load(customPath string) (SkylandConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSkylandYAML)
	if err != nil {
		return DefaultSkylandConfig(), nil
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single tuning file.
func LoadFile(path string) (SkylandConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SkylandConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SkylandConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only
// needs the keys it changes, and validates the result.
func Parse(data []byte) (SkylandConfig, error) {
	cfg := DefaultSkylandConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkylandConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SkylandConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg SkylandConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyland", filename)
}
