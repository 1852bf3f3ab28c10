package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

const fileName = "coredefense.yaml"

// Load loads Core Defense configuration on top of the defaults.
// Search order: customPath -> ~/.coredefense/configs/coredefense.yaml ->
// ./configs/coredefense.yaml -> embedded default.
func Load(customPath string) (CoreDefenseConfig, error) {
	cfg := DefaultCoreDefenseConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultCoreDefenseConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultCoreDefenseConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCoreDefenseYAML, &cfg); err != nil {
		return DefaultCoreDefenseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the parser from the file extension.
func decode(path string, data []byte, cfg *CoreDefenseConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coredefense", "configs", filename)
}
