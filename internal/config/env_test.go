package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvName(t *testing.T) {
	tests := map[string]string{
		"seed":       "FLAPPY_SEED",
		"log-level":  "FLAPPY_LOG_LEVEL",
		"flap-every": "FLAPPY_FLAP_EVERY",
	}
	for flag, want := range tests {
		if got := EnvName(flag); got != want {
			t.Errorf("EnvName(%q) = %q, want %q", flag, got, want)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	data := "FLAPPY_TEST_SEED=42\nFLAPPY_TEST_HOST=window\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	// Already-set variables win over the file
	t.Setenv("FLAPPY_TEST_HOST", "tui")
	t.Cleanup(func() { os.Unsetenv("FLAPPY_TEST_SEED") })

	if err := LoadEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	if v, ok := Env("test-seed"); !ok || v != "42" {
		t.Errorf("FLAPPY_TEST_SEED = %q (set %v), want 42", v, ok)
	}
	if v, _ := Env("test-host"); v != "tui" {
		t.Errorf("FLAPPY_TEST_HOST = %q, want tui (existing value kept)", v)
	}
}

func TestLoadEnvMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FLAPPY-BAD=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadEnv(path); err == nil {
		t.Error("expected error for malformed dotenv file")
	}
}
