package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable the game reads.
const EnvPrefix = "FLAPPY_"

// LoadEnv loads KEY=VALUE pairs from dotenv files into the process environment.
// Missing files are skipped. Variables that are already set keep their value.
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: failed to load %s: %w", p, err)
		}
	}
	return nil
}

// EnvName returns the environment variable for a flag name: "log-level" -> FLAPPY_LOG_LEVEL.
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// Env looks up the environment override for a flag name.
func Env(flag string) (string, bool) {
	return os.LookupEnv(EnvName(flag))
}
