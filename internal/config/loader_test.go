package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := FlappyConfig{}
	if err := decode("flappy.yaml", DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadCustomYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
physics:
  gravity: 1500
obstacles:
  capacity: 4
`)

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	if cfg.Physics.Gravity != 1500 {
		t.Errorf("Gravity = %g, expected 1500", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Capacity != 4 {
		t.Errorf("Capacity = %d, expected 4", cfg.Obstacles.Capacity)
	}
	// Untouched keys keep defaults
	if cfg.Obstacles.GapHeight != DefaultFlappyConfig().Obstacles.GapHeight {
		t.Errorf("GapHeight = %g, expected default", cfg.Obstacles.GapHeight)
	}
}

func TestLoadTOMLMatchesYAML(t *testing.T) {
	yamlPath := writeFile(t, "game.yaml", `
physics:
  gravity: 1600
  obstacle_velocity: -300
obstacles:
  gap_height: 460
  spacing: 560
collision:
  ceiling_lethal: true
`)
	tomlPath := writeFile(t, "game.toml", `
[physics]
gravity = 1600.0
obstacle_velocity = -300.0

[obstacles]
gap_height = 460.0
spacing = 560.0

[collision]
ceiling_lethal = true
`)

	fromYAML, err := LoadFlappy(yamlPath)
	if err != nil {
		t.Fatalf("LoadFlappy(yaml) failed: %v", err)
	}
	fromTOML, err := LoadFlappy(tomlPath)
	if err != nil {
		t.Fatalf("LoadFlappy(toml) failed: %v", err)
	}

	if fromYAML != fromTOML {
		t.Errorf("YAML and TOML configs differ:\n%+v\n%+v", fromYAML, fromTOML)
	}
	if !fromTOML.Collision.CeilingLethal {
		t.Error("ceiling_lethal should be set from TOML")
	}
}

func TestLoadUserTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".flappy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	content := "[physics]\ngravity = 1234.0\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1234 {
		t.Errorf("gravity = %g, expected 1234 from ~/.flappy/config.toml", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Capacity != DefaultFlappyConfig().Obstacles.Capacity {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFlappy() should fail for a missing custom path")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("a read failure is not a validation failure")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "broken.yaml", "physics: [not, a, map")
	if _, err := LoadFlappy(path); err == nil {
		t.Error("LoadFlappy() should fail on malformed YAML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
obstacles:
  capacity: 0
  width: -1
`)

	_, err := LoadFlappy(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	for _, field := range []string{"obstacles.capacity", "obstacles.width"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s: %v", field, err)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.Gravity = 1234.5

	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(cfg, format)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			var back FlappyConfig
			if err := decode("out."+format, data, &back); err != nil {
				t.Fatalf("decode() failed: %v", err)
			}
			if back != cfg {
				t.Errorf("round trip mismatch:\n%+v\n%+v", back, cfg)
			}
		})
	}

	if _, err := Encode(cfg, "ini"); err == nil {
		t.Error("Encode() should reject unknown formats")
	}
}
