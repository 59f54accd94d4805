package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) for any configuration that cannot produce a playable game.
var ErrInvalid = errors.New("invalid configuration")

// LoadFlappy loads the configuration.
// Search order: customPath -> ~/.flappy/config.yaml -> ~/.flappy/config.toml -> ./configs/flappy.yaml
// -> embedded default.
// Files only need to contain the keys they override; everything else keeps its default.
// The result is validated before it is returned.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{
		userConfigPath("config.yaml"),
		userConfigPath("config.toml"),
		filepath.Join("configs", "flappy.yaml"),
	} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultFlappyConfig()
		if err := decode(path, data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := decode("flappy.yaml", defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// decode parses data into cfg, picking the format from the file extension.
// Unknown extensions are treated as YAML.
func decode(path string, data []byte, cfg *FlappyConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode renders the configuration as YAML or TOML.
func Encode(cfg FlappyConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case "yaml", "yml", "":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
